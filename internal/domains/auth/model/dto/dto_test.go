package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hms/infras/jwt"
	"hms/internal/domains/auth/model/dto"
	userDto "hms/internal/domains/user/model/dto"
	"hms/shared/validator"
)

func TestLoginResponse_FromTokenPair(t *testing.T) {
	pair := &jwt.TokenPair{AccessToken: "access", RefreshToken: "refresh", TokenType: "Bearer", ExpiresIn: 900}

	var res dto.LoginResponse
	res.FromTokenPair(pair)

	assert.Equal(t, "access", res.AccessToken)
	assert.Equal(t, "refresh", res.RefreshToken)
	assert.Equal(t, "Bearer", res.TokenType)
	assert.Equal(t, int64(900), res.ExpiresIn)
}

func TestLoginRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.LoginRequest
		wantErr bool
	}{
		{name: "patient login", req: dto.LoginRequest{UserName: "amr", Password: "secret1", Role: "Patient"}},
		{name: "unknown role", req: dto.LoginRequest{UserName: "amr", Password: "secret1", Role: "Janitor"}, wantErr: true},
		{name: "missing password", req: dto.LoginRequest{UserName: "amr", Role: "Nurse"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRegisterRequest_Validate(t *testing.T) {
	req := dto.RegisterRequest{CreateUserRequest: userDto.CreateUserRequest{
		UserName:  "amr",
		FirstName: "Amr",
		LastName:  "Saleh",
		Email:     "amr@example.com",
		Gender:    "Male",
		Phone:     "0100000000",
		Password:  "12345",
	}}

	assert.Error(t, validator.ValidateStruct(&req))

	req.Password = "123456"
	assert.NoError(t, validator.ValidateStruct(&req))

	req.Gender = "Other"
	assert.Error(t, validator.ValidateStruct(&req))
}
