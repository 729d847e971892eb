package main

import (
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/secretsmanager"
)

var ErrNoSecret = errors.New("no JWT secret configured: set BST_JWT_SECRET_ID or BST_JWT_SECRET")

// loadSecret resolves the token signing secret. A Secrets Manager id in
// BST_JWT_SECRET_ID takes precedence over a literal BST_JWT_SECRET.
func loadSecret(getenv func(string) string, fetch func(id string) (string, error)) ([]byte, error) {
	if id := getenv("BST_JWT_SECRET_ID"); id != "" {
		secret, err := fetch(id)
		if err != nil {
			return nil, fmt.Errorf("fetching secret %s: %w", id, err)
		}
		if secret == "" {
			return nil, fmt.Errorf("secret %s is empty: %w", id, ErrNoSecret)
		}
		return []byte(secret), nil
	}
	if secret := getenv("BST_JWT_SECRET"); secret != "" {
		return []byte(secret), nil
	}
	return nil, ErrNoSecret
}

func fetchSecret(id string) (string, error) {
	sess := session.Must(session.NewSession())
	client := secretsmanager.New(sess)
	res, err := client.GetSecretValue(&secretsmanager.GetSecretValueInput{
		SecretId: aws.String(id),
	})
	if err != nil {
		return "", err
	}
	return aws.StringValue(res.SecretString), nil
}
