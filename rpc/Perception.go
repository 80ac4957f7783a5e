// Package rpc defines the abstract perception/manipulation service
// contracts the robot-integrated driver calls out to (spec §6 "External
// interfaces"). It only declares request/response shapes and client
// interfaces; wiring a concrete transport (ROS service clients, gRPC, ...)
// is robot middleware integration and out of scope here, matching the
// RRLIB_ASSEMBLY/RRLIB_HOTEL split in original_source/ between the
// planning-and-simulation core and their ROS-specific
// GetObsFromMSG/actionlib glue.
package rpc

import "context"

// ObservationType selects which of the four perception readings a request
// asks for (spec §6 "OBSERVE_WORKER, OBSERVE_TRUCK|HOTEL_TYPE,
// OBSERVE_CONTAINER|LOCAL_STORAGE, OBSERVE_HOTEL_PROGRESS").
type ObservationType int

const (
	ObserveWorker ObservationType = iota
	ObserveTruckOrHotelType
	ObserveContainerOrStorage
	ObserveHotelProgress
)

// PerceptionRequest is one perception-service call, grounded on
// intention_recognition_msgs::Intention's request fields
// (observation_type, id).
type PerceptionRequest struct {
	Type ObservationType
	// ID selects which container/part the request targets; unused for
	// ObserveWorker and ObserveTruckOrHotelType (spec §6 "plus optional id").
	ID int
}

// APOTriple mirrors the assembly domain's (activity, pose, outcome)
// observation, the shape GetObsFromMSG parses out of
// worker_action_type/worker_on_what/worker_success.
type APOTriple struct {
	Activity int
	Pose     int
	Outcome  bool
}

// PerceptionResponse is one perception-service reply. Exactly one of the
// typed payload fields is populated, selected by the request's Type: APO
// for ObserveWorker, Bits for a bit-vector reading (hotel
// Perceive/InspectContainer), Type for an integer type reading (truck/hotel
// type), Bool for a single boolean (container empty/non-empty). Terminal
// reports an implicit end-of-episode hint from the service (spec §7
// "Terminal observation from the perception service... treated as a
// successful end-of-episode, not an error").
type PerceptionResponse struct {
	APO      APOTriple
	Bits     []bool
	Type     int
	Bool     bool
	Accuracy float64
	Terminal bool
}

// PerceptionClient is the abstract perception-service contract a
// robot-integrated Driver calls between planner decisions.
type PerceptionClient interface {
	Observe(ctx context.Context, req PerceptionRequest) (PerceptionResponse, error)
}
