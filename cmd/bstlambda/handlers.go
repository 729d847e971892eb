package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/aws/aws-lambda-go/events"

	"github.com/oahshtsua/lab/bst/internal/api"
	"github.com/oahshtsua/lab/bst/internal/store"
	"github.com/oahshtsua/lab/bst/internal/tree"
)

func (app *Application) route(req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if rest, ok := strings.CutPrefix(req.Path, "/v1/key/"); ok {
		key, err := strconv.Atoi(rest)
		if err != nil {
			return respond("Invalid key.", http.StatusBadRequest), nil
		}
		switch req.HTTPMethod {
		case http.MethodGet:
			return app.getKeyHandler(key)
		case http.MethodPut:
			return app.ValidateJWT(func(events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
				return app.putKeyHandler(key)
			})(req)
		case http.MethodDelete:
			return app.ValidateJWT(func(events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
				return app.deleteKeyHandler(key)
			})(req)
		}
		return respond("Method not allowed.", http.StatusMethodNotAllowed), nil
	}

	if order, ok := strings.CutPrefix(req.Path, "/v1/traversal/"); ok && req.HTTPMethod == http.MethodGet {
		return app.traversalHandler(order)
	}

	if req.Path == "/v1/keys" && req.HTTPMethod == http.MethodPost {
		return app.ValidateJWT(app.postKeysHandler)(req)
	}

	return respond("Not found.", http.StatusNotFound), nil
}

func (app *Application) getKeyHandler(key int) (events.APIGatewayProxyResponse, error) {
	found, err := app.store.Search(key)
	if err != nil {
		return respond("Internal server error", http.StatusInternalServerError), err
	}
	if !found {
		return respond("Key not found.", http.StatusNotFound), nil
	}
	return respond(strconv.Itoa(key), http.StatusOK), nil
}

func (app *Application) putKeyHandler(key int) (events.APIGatewayProxyResponse, error) {
	if err := app.store.Insert(key); err != nil {
		return respond("Internal server error", http.StatusInternalServerError), err
	}
	return respond("Key inserted.", http.StatusCreated), nil
}

func (app *Application) deleteKeyHandler(key int) (events.APIGatewayProxyResponse, error) {
	err := app.store.Delete(key)
	if errors.Is(err, store.ErrKeyNotFound) {
		return respond("Key not found.", http.StatusNotFound), nil
	}
	if err != nil {
		return respond("Internal server error", http.StatusInternalServerError), err
	}
	return events.APIGatewayProxyResponse{StatusCode: http.StatusNoContent}, nil
}

func (app *Application) postKeysHandler(req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	keys, err := api.ParseKeys(req.Body)
	if err != nil {
		return respond("Invalid request.", http.StatusBadRequest), nil
	}
	for _, key := range keys {
		if err := app.store.Insert(key); err != nil {
			return respond("Internal server error", http.StatusInternalServerError), err
		}
	}
	return respond("Keys inserted.", http.StatusCreated), nil
}

func (app *Application) traversalHandler(name string) (events.APIGatewayProxyResponse, error) {
	order, err := tree.ParseOrder(name)
	if err != nil {
		return respond("Unknown traversal order.", http.StatusBadRequest), nil
	}
	keys, err := app.store.Traverse(order)
	if err != nil {
		return respond("Internal server error", http.StatusInternalServerError), err
	}

	body, err := json.Marshal(api.TraversalResponse{Order: order.String(), Keys: keys})
	if err != nil {
		return respond("Internal server error", http.StatusInternalServerError), err
	}
	return events.APIGatewayProxyResponse{
		Body:       string(body),
		StatusCode: http.StatusOK,
		Headers:    map[string]string{"Content-Type": "application/json"},
	}, nil
}
