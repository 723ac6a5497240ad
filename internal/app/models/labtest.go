package models

import "time"

type LabTestStatus string

const (
	LabTestRequested  LabTestStatus = "requested"
	LabTestInProgress LabTestStatus = "in_progress"
	LabTestCompleted  LabTestStatus = "completed"
)

type LabTestType string

const (
	LabTestBlood  LabTestType = "blood"
	LabTestUrine  LabTestType = "urine"
	LabTestXRay   LabTestType = "x_ray"
	LabTestMRI    LabTestType = "mri"
	LabTestCTScan LabTestType = "ct_scan"
	LabTestOther  LabTestType = "other"
)

type LabTest struct {
	ID             string        `json:"id" bson:"_id,omitempty"`
	PatientID      string        `json:"patient_id" bson:"patientId"`
	DoctorID       string        `json:"doctor_id" bson:"doctorId"`
	AppointmentID  string        `json:"appointment_id,omitempty" bson:"appointmentId,omitempty"`
	TestName       string        `json:"test_name" bson:"testName"`
	TestType       LabTestType   `json:"test_type" bson:"testType"`
	Status         LabTestStatus `json:"status" bson:"status"`
	Results        string        `json:"results,omitempty" bson:"results,omitempty"`
	ResultsFileURL string        `json:"results_file_url,omitempty" bson:"resultsFileUrl,omitempty"`
	Notes          string        `json:"notes,omitempty" bson:"notes,omitempty"`
	TechnicianID   string        `json:"technician_id,omitempty" bson:"technicianId,omitempty"`
	CompletedAt    *time.Time    `json:"completed_at,omitempty" bson:"completedAt,omitempty"`
	TimeModel      `bson:",inline"`
}
