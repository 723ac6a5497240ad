package requests

type CreateTriageAssessment struct {
	PatientID         string     `json:"patient_id" validate:"required"`
	AppointmentID     string     `json:"appointment_id,omitempty"`
	PriorityLevel     string     `json:"priority_level" validate:"required,oneof=emergency urgent semi_urgent standard non_urgent"`
	ChiefComplaint    string     `json:"chief_complaint" validate:"required"`
	VitalSigns        VitalSigns `json:"vital_signs"`
	Symptoms          []string   `json:"symptoms,omitempty"`
	AssessmentNotes   string     `json:"assessment_notes,omitempty"`
	RecommendedAction string     `json:"recommended_action,omitempty"`
	EstimatedWaitTime int        `json:"estimated_wait_time,omitempty"`
}

type VitalSigns struct {
	Temperature            float64 `json:"temperature,omitempty"`
	BloodPressureSystolic  int     `json:"blood_pressure_systolic,omitempty"`
	BloodPressureDiastolic int     `json:"blood_pressure_diastolic,omitempty"`
	HeartRate              int     `json:"heart_rate,omitempty"`
	RespiratoryRate        int     `json:"respiratory_rate,omitempty"`
	OxygenSaturation       int     `json:"oxygen_saturation,omitempty"`
	PainScale              int     `json:"pain_scale,omitempty"`
}
