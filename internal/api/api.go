// Package api exposes a tree store over HTTP.
package api

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/tidwall/gjson"

	"github.com/oahshtsua/lab/bst/internal/store"
	"github.com/oahshtsua/lab/bst/internal/tree"
)

var ErrInvalidKeys = errors.New("body must hold a \"keys\" array of integers")

type Application struct {
	Store store.Store
}

type TraversalResponse struct {
	Order string `json:"order"`
	Keys  []int  `json:"keys"`
}

func (app *Application) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/key/{key}", app.getKeyHandler)
	mux.HandleFunc("PUT /v1/key/{key}", app.putKeyHandler)
	mux.HandleFunc("DELETE /v1/key/{key}", app.deleteKeyHandler)
	mux.HandleFunc("POST /v1/keys", app.postKeysHandler)
	mux.HandleFunc("GET /v1/traversal/{order}", app.traversalHandler)
	return mux
}

func parseKey(r *http.Request) (int, bool) {
	key, err := strconv.Atoi(r.PathValue("key"))
	return key, err == nil
}

// ParseKeys extracts the "keys" array of a bulk insert body.
func ParseKeys(body string) ([]int, error) {
	if !gjson.Valid(body) {
		return nil, ErrInvalidKeys
	}
	arr := gjson.Get(body, "keys")
	if !arr.IsArray() {
		return nil, ErrInvalidKeys
	}

	keys := []int{}
	for _, v := range arr.Array() {
		if v.Type != gjson.Number || v.Float() != float64(v.Int()) {
			return nil, ErrInvalidKeys
		}
		keys = append(keys, int(v.Int()))
	}
	return keys, nil
}

func (app *Application) getKeyHandler(w http.ResponseWriter, r *http.Request) {
	key, ok := parseKey(r)
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	found, err := app.Store.Search(key)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if !found {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	w.Write([]byte(strconv.Itoa(key)))
}

func (app *Application) putKeyHandler(w http.ResponseWriter, r *http.Request) {
	key, ok := parseKey(r)
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if err := app.Store.Insert(key); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (app *Application) deleteKeyHandler(w http.ResponseWriter, r *http.Request) {
	key, ok := parseKey(r)
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	err := app.Store.Delete(key)
	if err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			w.WriteHeader(http.StatusNotFound)
		} else {
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (app *Application) postKeysHandler(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	defer r.Body.Close()

	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	keys, err := ParseKeys(string(body))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	for _, key := range keys {
		if err := app.Store.Insert(key); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
	}
	w.WriteHeader(http.StatusCreated)
}

func (app *Application) traversalHandler(w http.ResponseWriter, r *http.Request) {
	order, err := tree.ParseOrder(r.PathValue("order"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	keys, err := app.Store.Traverse(order)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(TraversalResponse{Order: order.String(), Keys: keys})
	if err != nil {
		log.Println("Unable to write traversal response:", err)
	}
}
