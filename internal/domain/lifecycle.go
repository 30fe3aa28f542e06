package domain

// SwapAction is a participant-triggered lifecycle action on a swap.
type SwapAction string

const (
	SwapActionCancel   SwapAction = "cancel"
	SwapActionAccept   SwapAction = "accept"
	SwapActionReject   SwapAction = "reject"
	SwapActionComplete SwapAction = "complete"
)

// actionTarget maps each action to the status it produces.
var actionTarget = map[SwapAction]SwapStatus{
	SwapActionCancel:   SwapStatusCancelled,
	SwapActionAccept:   SwapStatusAccepted,
	SwapActionReject:   SwapStatusRejected,
	SwapActionComplete: SwapStatusCompleted,
}

// AllowedActions returns the exact set of lifecycle actions the viewer may
// trigger on a swap in the given status. The permitted set depends solely on
// the current status and on which of the two fixed roles the viewer holds:
//
//	pending,  requester: cancel
//	pending,  provider:  accept, reject
//	accepted, either:    complete
//	terminal states:     nothing
func AllowedActions(status SwapStatus, isRequester bool) []SwapAction {
	switch status {
	case SwapStatusPending:
		if isRequester {
			return []SwapAction{SwapActionCancel}
		}
		return []SwapAction{SwapActionAccept, SwapActionReject}
	case SwapStatusAccepted:
		return []SwapAction{SwapActionComplete}
	}
	return nil
}

// ActionForTransition resolves the action that moves a swap from its current
// status to target. The second return is false when no legal action produces
// target from the current status for the given role.
func ActionForTransition(current, target SwapStatus, isRequester bool) (SwapAction, bool) {
	for _, action := range AllowedActions(current, isRequester) {
		if actionTarget[action] == target {
			return action, true
		}
	}
	return "", false
}

// CanTransition reports whether the viewer may move the swap from current to
// target status.
func CanTransition(current, target SwapStatus, isRequester bool) bool {
	_, ok := ActionForTransition(current, target, isRequester)
	return ok
}

// TargetStatus returns the status an action produces.
func TargetStatus(action SwapAction) (SwapStatus, bool) {
	target, ok := actionTarget[action]
	return target, ok
}

// IsTerminal reports whether no further lifecycle transition is permitted.
func IsTerminal(status SwapStatus) bool {
	switch status {
	case SwapStatusRejected, SwapStatusCancelled, SwapStatusCompleted:
		return true
	}
	return false
}

// CanDeleteSwap reports whether the viewer may remove the swap record
// entirely. Deletion is distinct from cancellation: it erases the record
// rather than preserving it in the cancelled state, and is only open to the
// requester while the swap is still pending.
func CanDeleteSwap(status SwapStatus, isRequester bool) bool {
	return status == SwapStatusPending && isRequester
}
