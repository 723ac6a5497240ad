package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Auth messages
	LoginSuccess        = "successfully login"
	LogoutSuccess       = "successfully logout"
	UserCreatedSuccess  = "user created successfully"
	UsersFetchedSuccess = "users fetched successfully"

	// Patient messages
	PatientCreatedSuccess      = "patient registered successfully"
	PatientUpdatedSuccess      = "patient updated successfully"
	PatientFetchedSuccess      = "patient fetched successfully"
	PatientsFetchedSuccess     = "patients fetched successfully"
	CardActivatedSuccess       = "patient card activated successfully"
	CardSuspensionLiftedNotice = "patient card suspension lifted"

	// Appointment messages
	AppointmentCreatedSuccess  = "appointment created successfully"
	AppointmentsFetchedSuccess = "appointments fetched successfully"
	AppointmentUpdatedSuccess  = "appointment status updated successfully"

	// Prescription messages
	PrescriptionCreatedSuccess   = "prescription created successfully"
	PrescriptionsFetchedSuccess  = "prescriptions fetched successfully"
	PrescriptionDispensedSuccess = "prescription dispensed successfully"

	// Lab test messages
	LabTestRequestedSuccess = "lab test requested successfully"
	LabTestsFetchedSuccess  = "lab tests fetched successfully"
	LabTestStartedSuccess   = "lab test marked in progress"
	LabTestCompletedSuccess = "lab test completed successfully"

	// Triage messages
	TriageCreatedSuccess  = "triage assessment recorded successfully"
	TriagesFetchedSuccess = "triage assessments fetched successfully"
)
