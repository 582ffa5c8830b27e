package schema

type RegisterInput struct {
	Name     string `json:"name" validate:"required,min=1,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

func (s *Schema) CheckRegister(in *RegisterInput) error {
	return s.check(in)
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (s *Schema) CheckLogin(in *LoginInput) error {
	return s.check(in)
}
