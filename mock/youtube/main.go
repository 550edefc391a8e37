package main

import (
	_ "embed"
	"log"
	"net/http"
	"time"
)

//go:embed search.json
var searchData []byte

//go:embed channels.json
var channelsData []byte

//go:embed playlist_items.json
var playlistItemsData []byte

//go:embed videos.json
var videosData []byte

func serve(path string, data []byte) {
	http.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		// Simulate network latency (50-200ms)
		time.Sleep(time.Duration(50+time.Now().UnixNano()%150) * time.Millisecond)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(data); err != nil {
			log.Printf("[Mock YouTube] Write error: %v", err)
		}

		log.Printf("[Mock YouTube] %s %s - 200 OK", r.Method, r.URL.Path)
	})
}

func main() {
	serve("/youtube/v3/search", searchData)
	serve("/youtube/v3/channels", channelsData)
	serve("/youtube/v3/playlistItems", playlistItemsData)
	serve("/youtube/v3/videos", videosData)

	http.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(`{"status":"healthy"}`)); err != nil {
			log.Printf("[Mock YouTube] Health write error: %v", err)
		}
	})

	log.Println("Mock YouTube Data API running on :8081")
	server := &http.Server{
		Addr:         ":8081",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	log.Fatal(server.ListenAndServe())
}
