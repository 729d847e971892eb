package main

import (
	"log"
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/oahshtsua/lab/bst/internal/store"
)

type Application struct {
	store  store.Store
	secret []byte
}

func main() {
	secret, err := loadSecret(os.Getenv, fetchSecret)
	if err != nil {
		log.Fatalln(err)
	}

	// The tree lives as long as the warm container does.
	app := Application{
		store:  store.NewTreeStore(nil),
		secret: secret,
	}
	lambda.Start(app.route)
}
