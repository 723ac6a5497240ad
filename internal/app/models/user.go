package models

type User struct {
	ID        string `json:"id" bson:"_id,omitempty"`
	Email     string `json:"email" bson:"email"`
	Password  string `json:"-" bson:"password"`
	Role      Role   `json:"role" bson:"role"`
	FirstName string `json:"first_name" bson:"firstName"`
	LastName  string `json:"last_name" bson:"lastName"`
	Phone     string `json:"phone,omitempty" bson:"phone,omitempty"`
	ClinicID  string `json:"clinic_id,omitempty" bson:"clinicId,omitempty"`
	TimeModel `bson:",inline"`
}
