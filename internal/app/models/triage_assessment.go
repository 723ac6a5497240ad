package models

type PriorityLevel string

const (
	PriorityEmergency  PriorityLevel = "emergency"
	PriorityUrgent     PriorityLevel = "urgent"
	PrioritySemiUrgent PriorityLevel = "semi_urgent"
	PriorityStandard   PriorityLevel = "standard"
	PriorityNonUrgent  PriorityLevel = "non_urgent"
)

type VitalSigns struct {
	Temperature            float64 `json:"temperature,omitempty" bson:"temperature,omitempty"`
	BloodPressureSystolic  int     `json:"blood_pressure_systolic,omitempty" bson:"bloodPressureSystolic,omitempty"`
	BloodPressureDiastolic int     `json:"blood_pressure_diastolic,omitempty" bson:"bloodPressureDiastolic,omitempty"`
	HeartRate              int     `json:"heart_rate,omitempty" bson:"heartRate,omitempty"`
	RespiratoryRate        int     `json:"respiratory_rate,omitempty" bson:"respiratoryRate,omitempty"`
	OxygenSaturation       int     `json:"oxygen_saturation,omitempty" bson:"oxygenSaturation,omitempty"`
	PainScale              int     `json:"pain_scale,omitempty" bson:"painScale,omitempty"`
}

type TriageAssessment struct {
	ID                string        `json:"id" bson:"_id,omitempty"`
	PatientID         string        `json:"patient_id" bson:"patientId"`
	TriageOfficerID   string        `json:"triage_officer_id" bson:"triageOfficerId"`
	AppointmentID     string        `json:"appointment_id,omitempty" bson:"appointmentId,omitempty"`
	PriorityLevel     PriorityLevel `json:"priority_level" bson:"priorityLevel"`
	ChiefComplaint    string        `json:"chief_complaint" bson:"chiefComplaint"`
	VitalSigns        VitalSigns    `json:"vital_signs" bson:"vitalSigns"`
	Symptoms          []string      `json:"symptoms,omitempty" bson:"symptoms,omitempty"`
	AssessmentNotes   string        `json:"assessment_notes,omitempty" bson:"assessmentNotes,omitempty"`
	RecommendedAction string        `json:"recommended_action,omitempty" bson:"recommendedAction,omitempty"`
	EstimatedWaitTime int           `json:"estimated_wait_time,omitempty" bson:"estimatedWaitTime,omitempty"`
	TimeModel         `bson:",inline"`
}
