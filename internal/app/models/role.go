package models

// Role is the closed set of staff roles. Role checks switch exhaustively so
// that adding a role forces every call site to be revisited.
type Role string

const (
	RoleReceptionist  Role = "receptionist"
	RoleDoctor        Role = "doctor"
	RoleLabTechnician Role = "lab_technician"
	RolePharmacist    Role = "pharmacist"
	RoleAdmin         Role = "admin"
	RoleTriageOfficer Role = "triage_officer"
)

func (r Role) Valid() bool {
	switch r {
	case RoleReceptionist, RoleDoctor, RoleLabTechnician, RolePharmacist, RoleAdmin, RoleTriageOfficer:
		return true
	}
	return false
}

// SeesAllCardStates reports whether the role handles card remediation and
// therefore must see expired, suspended and unactivated patients.
func (r Role) SeesAllCardStates() bool {
	switch r {
	case RoleReceptionist, RoleAdmin:
		return true
	case RoleDoctor, RoleLabTechnician, RolePharmacist, RoleTriageOfficer:
		return false
	}
	return false
}
