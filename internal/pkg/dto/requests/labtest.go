package requests

type CreateLabTest struct {
	PatientID     string `json:"patient_id" validate:"required"`
	AppointmentID string `json:"appointment_id,omitempty"`
	TestName      string `json:"test_name" validate:"required"`
	TestType      string `json:"test_type" validate:"required,oneof=blood urine x_ray mri ct_scan other"`
	Notes         string `json:"notes,omitempty"`
}

type CompleteLabTest struct {
	Results string `json:"results" validate:"required"`
	Notes   string `json:"notes,omitempty"`
}
