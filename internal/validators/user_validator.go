package validators

import (
	"errors"
	"strings"
)

type SignupUserRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required,max=55"`
}

type LoginUserRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	Name     *string `json:"name,omitempty" binding:"omitempty,min=1,max=55"`
	Password *string `json:"password,omitempty" binding:"omitempty,min=6"`
}

// Validate 在发请求之前做本地校验，避免一次注定失败的网络调用。
func (r SignupUserRequest) Validate() error {
	if l := len(strings.TrimSpace(r.Username)); l < 3 || l > 50 {
		return errors.New("username must be 3-50 characters")
	}
	if len(r.Password) < 6 {
		return errors.New("password must be at least 6 characters")
	}
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("name is required")
	}
	return nil
}

func (r LoginUserRequest) Validate() error {
	if strings.TrimSpace(r.Username) == "" {
		return errors.New("username is required")
	}
	if r.Password == "" {
		return errors.New("password is required")
	}
	return nil
}

func (r UpdateProfileRequest) Validate() error {
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		return errors.New("name cannot be empty")
	}
	if r.Password != nil && len(*r.Password) < 6 {
		return errors.New("password must be at least 6 characters")
	}
	return nil
}
