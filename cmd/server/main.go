package main

import (
	"log"
	"net/http"

	"eventhub/internal/api"
	"eventhub/internal/config"
	"eventhub/internal/server"
	"eventhub/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	client := api.New(cfg.APIBaseURL)
	tokens := session.NewCookieTokenStore(cfg.SessionSecret)
	srv := server.New(client, tokens, "internal/templates")

	log.Println("EventHub listening on :" + cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, srv); err != nil {
		log.Fatalf("server: %v", err)
	}
}
