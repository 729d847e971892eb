package main

import (
	"errors"
	"log"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/golang-jwt/jwt/v5"
)

type APIGatewayHandler func(request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

// ValidateJWT rejects requests without a valid, unexpired HS256 bearer token.
func (app *Application) ValidateJWT(next APIGatewayHandler) APIGatewayHandler {
	return func(request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		token := extractToken(request.Headers)
		if token == "" {
			return respond("Missing auth token", http.StatusUnauthorized), nil
		}

		claims, err := parseJWT(token, app.secret)
		if errors.Is(err, jwt.ErrTokenExpired) {
			return respond("Token expired", http.StatusUnauthorized), nil
		}
		if err != nil {
			return respond("Unauthorized", http.StatusUnauthorized), nil
		}

		if sub, err := claims.GetSubject(); err == nil && sub != "" {
			log.Printf("%s %s by %s", request.HTTPMethod, request.Path, sub)
		}
		return next(request)
	}
}
