package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"yatube/cmd/app"
	"yatube/internal/config"
	handlers "yatube/internal/handler"
	"yatube/internal/middleware"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY не установлен в .env файле")
	}

	db, repo, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(repo, services, cfg)

	router := mux.NewRouter()

	// setting up routes
	router.HandleFunc("/health", handlers.HealthHandler).Methods(http.MethodGet)
	router.HandleFunc("/stats", handler.StatsHandler).Methods(http.MethodGet)

	router.HandleFunc("/api/auth/register", handler.Register).Methods(http.MethodPost)
	router.HandleFunc("/api/auth/login", handler.Login).Methods(http.MethodPost)
	router.HandleFunc("/api/auth/refresh-token", handler.RefreshToken).Methods(http.MethodPost)
	router.HandleFunc("/api/me", handler.GetCurrentUser).Methods(http.MethodGet)

	router.HandleFunc("/", handler.Index).Methods(http.MethodGet)
	router.HandleFunc("/follow", handler.FollowingFeed).Methods(http.MethodGet)
	router.HandleFunc("/groups", handler.Groups).Methods(http.MethodGet)
	router.HandleFunc("/group/{slug}", handler.GroupFeed).Methods(http.MethodGet)
	router.HandleFunc("/profile/{username}", handler.Profile).Methods(http.MethodGet)
	router.HandleFunc("/profile/{username}/follow", handler.Follow).Methods(http.MethodPost)
	router.HandleFunc("/profile/{username}/follow", handler.Unfollow).Methods(http.MethodDelete)

	router.HandleFunc("/posts", handler.CreatePost).Methods(http.MethodPost)
	router.HandleFunc("/posts/{id}", handler.GetPost).Methods(http.MethodGet)
	router.HandleFunc("/posts/{id}", handler.UpdatePost).Methods(http.MethodPut)
	router.HandleFunc("/posts/{id}", handler.DeletePost).Methods(http.MethodDelete)
	router.HandleFunc("/posts/{id}/comments", handler.AddComment).Methods(http.MethodPost)
	router.HandleFunc("/posts/{id}/image", handler.UploadImage).Methods(http.MethodPost)

	handlerChain := middleware.Chain(
		router,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
		middleware.AuthMiddleware(cfg),
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	fmt.Printf("Сервер запущен на %s\n", addr)
	fmt.Printf("База данных: %s\n", cfg.DB.DbNAME)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
