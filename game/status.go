package game

// Instruction returns the prompt shown for the given scene state and whether
// it should pulse. It holds no state of its own.
func Instruction(s State, transitionTicks, spawned, wanderTicks, watchThreshold int) (text string, pulsing bool) {
	switch s {
	case StateGrid:
		return "CLICK TO SHRINK", true
	case StateFloat:
		return "PRESS 'C' FOR CAT", false
	case StateCatFormation:
		if transitionTicks < wanderTicks {
			return "FORMING...", false
		}
		return "PRESS 'R' FOR RATS", false
	case StateRatsWalk:
		if spawned < watchThreshold {
			return "WATCH...", false
		}
		return "PRESS 'S' TO SCATTER", false
	case StateDisperse:
		return "PRESS 'G' TO RESET", false
	default:
		return "", false
	}
}
