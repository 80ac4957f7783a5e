package rpc

import "context"

// Task is one manipulation step, grounded on
// intention_recognition_msgs::PlanAndExecuteGoal's task/parameters fields
// (e.g. goal.task = "bring_item"; goal.parameters = {"hot_glue_gun"}).
type Task struct {
	Task       string
	Parameters []string
}

// Common task names the original action client issues.
const (
	TaskSearchItem = "search_item"
	TaskMoveItem   = "move_item"
	TaskBringItem  = "bring_item"
)

// ManipulationRequest is an ordered list of Tasks to execute in sequence
// (spec §6 "Request: ordered list of tasks").
type ManipulationRequest struct {
	Tasks []Task
}

// ManipulationResponse reports one outcome per requested Task, in the same
// order (spec §6 "Response: ordered lists of success:bool[] and
// message:str[]").
type ManipulationResponse struct {
	Success []bool
	Message []string
}

// ManipulationClient is the abstract manipulation-service contract a
// robot-integrated Driver calls to execute a BringPart/BringGlue/InspectX
// action's physical counterpart.
type ManipulationClient interface {
	Execute(ctx context.Context, req ManipulationRequest) (ManipulationResponse, error)
}
