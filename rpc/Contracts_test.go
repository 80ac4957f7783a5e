package rpc

import (
	"context"
	"testing"
)

// stubPerception and stubManipulation assert, at compile time, that the
// abstract contracts are implementable without pulling in any transport,
// and back the response-shape tests below.
type stubPerception struct{}

func (stubPerception) Observe(ctx context.Context, req PerceptionRequest) (PerceptionResponse, error) {
	switch req.Type {
	case ObserveWorker:
		return PerceptionResponse{APO: APOTriple{Activity: 1, Pose: 2, Outcome: true}, Accuracy: 0.85}, nil
	case ObserveContainerOrStorage:
		return PerceptionResponse{Bool: true, Accuracy: 0.9}, nil
	default:
		return PerceptionResponse{Type: 0, Accuracy: 0.5}, nil
	}
}

type stubManipulation struct{}

func (stubManipulation) Execute(ctx context.Context, req ManipulationRequest) (ManipulationResponse, error) {
	resp := ManipulationResponse{
		Success: make([]bool, len(req.Tasks)),
		Message: make([]string, len(req.Tasks)),
	}
	for i := range req.Tasks {
		resp.Success[i] = true
		resp.Message[i] = "ok"
	}
	return resp, nil
}

var (
	_ PerceptionClient   = stubPerception{}
	_ ManipulationClient = stubManipulation{}
)

func TestManipulationResponseOrderingMatchesRequest(t *testing.T) {
	req := ManipulationRequest{Tasks: []Task{
		{Task: TaskBringItem, Parameters: []string{"hot_glue_gun"}},
		{Task: TaskMoveItem, Parameters: []string{"box", "table_4"}},
	}}

	resp, err := stubManipulation{}.Execute(context.Background(), req)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(resp.Success) != len(req.Tasks) || len(resp.Message) != len(req.Tasks) {
		t.Fatalf("response length mismatch: got %d/%d successes/messages, want %d",
			len(resp.Success), len(resp.Message), len(req.Tasks))
	}
}

func TestPerceptionResponseObserveWorkerPopulatesAPO(t *testing.T) {
	resp, err := stubPerception{}.Observe(context.Background(), PerceptionRequest{Type: ObserveWorker})
	if err != nil {
		t.Fatalf("Observe: %v", err)
	}
	if resp.APO.Activity != 1 || resp.APO.Pose != 2 || !resp.APO.Outcome {
		t.Errorf("APO = %+v, want {1 2 true}", resp.APO)
	}
}
