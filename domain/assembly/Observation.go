package assembly

// NumPoses and NumOutcomes size the Activity/Pose/Outcome observation
// tuple the Perceive action reports (spec §4.6).
const (
	NumActivities = 4 // None, Wait, Assemble, Glue
	NumPoses      = 2 // Part, Glue
	NumOutcomes   = 2 // Fail, OK
)

// encodeAPO packs an (activity, pose, outcome) triple into a linear index,
// spec §4.6: act*|P|*|O| + pose*|O| + outcome.
func encodeAPO(activity, pose, outcome int) int {
	return activity*NumPoses*NumOutcomes + pose*NumOutcomes + outcome
}

// decodeAPO is encodeAPO's inverse, used by the Stringer implementation and
// round-trip tests (spec §8 "Observation encoding is a bijection").
func decodeAPO(index int) (activity, pose, outcome int) {
	outcome = index % NumOutcomes
	index /= NumOutcomes
	pose = index % NumPoses
	activity = index / NumPoses
	return
}

// numAPOObservations is the size of the Perceive observation space.
const numAPOObservations = NumActivities * NumPoses * NumOutcomes
