package resource

// Status transitions. Every transition builds a fresh OperationStatus; RESET
// is the zero value.
//
//	idle      --START-->   pending   {pending: true,  busy: true,  success: nil}
//	any       --SUCCESS--> succeeded {pending: false, busy: false, success: true}
//	any       --FAILURE--> failed    {pending: true,  busy: false, success: false}
//	any       --RESET-->   idle      {pending: nil,   busy: false, success: nil}
//
// FAILURE leaves pending set: a failed operation has not settled cleanly.

func startedStatus(payload any) OperationStatus {
	return OperationStatus{Pending: boolPtr(true), Busy: true, Payload: payload}
}

func succeededStatus(payload any) OperationStatus {
	return OperationStatus{Pending: boolPtr(false), Success: boolPtr(true), Payload: payload}
}

func failedStatus(payload any) OperationStatus {
	return OperationStatus{Pending: boolPtr(true), Success: boolPtr(false), Payload: payload}
}

func boolPtr(v bool) *bool {
	return &v
}
