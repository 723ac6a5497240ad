package constvars

const (
	MongoCollectionUsers             = "users"
	MongoCollectionPatients          = "patients"
	MongoCollectionAppointments      = "appointments"
	MongoCollectionPrescriptions     = "prescriptions"
	MongoCollectionLabTests          = "lab_tests"
	MongoCollectionTriageAssessments = "triage_assessments"
)

const (
	MongoFieldCreatedAt        = "createdAt"
	MongoFieldUpdatedAt        = "updatedAt"
	MongoFieldAssignedDoctorID = "assignedDoctorId"
)
