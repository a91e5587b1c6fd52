package requests

type CreateUser struct {
	FirstName   string `json:"firstName" validate:"required,max=100"`
	LastName    string `json:"lastName" validate:"required,max=100"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,password"`
	Role        string `json:"role" validate:"required,role_type"`
	Gender      string `json:"gender" validate:"omitempty,gender_type"`
	DateOfBirth string `json:"dateOfBirth" validate:"omitempty,date_of_birth"`
	PhoneNumber string `json:"phoneNumber" validate:"omitempty,phone_number"`
}

// UpdateUser only changes the fields that are present.
type UpdateUser struct {
	UserID      string  `json:"-"`
	FirstName   *string `json:"firstName" validate:"omitempty,max=100"`
	LastName    *string `json:"lastName" validate:"omitempty,max=100"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Password    *string `json:"password" validate:"omitempty,password"`
	Gender      *string `json:"gender" validate:"omitempty,gender_type"`
	DateOfBirth *string `json:"dateOfBirth" validate:"omitempty,date_of_birth"`
	PhoneNumber *string `json:"phoneNumber" validate:"omitempty,phone_number"`
}
