package web

import (
	"log"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

func NewRouter() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/convert", HandlerConvert).Methods("POST")
	r.HandleFunc("/json/skn", HandlerJsonSkn).Methods("POST")
	r.HandleFunc("/yaml/skn", HandlerYamlSkn).Methods("POST")
	r.HandleFunc("/ws/status", HandlerStatus)
	return r
}

func StartServer(addr string) error {
	h := handlers.LoggingHandler(os.Stdout, handlers.RecoveryHandler()(NewRouter()))

	log.Printf("[web] Starting server %v", addr)

	return http.ListenAndServe(addr, h)
}
