package transfer

import "github.com/golang-jwt/jwt/v5"

type BrandClaims struct {
	Brand string `json:"brand"`
	jwt.RegisteredClaims
}
