package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/miradam/aaa-onboarding-portal/internal/app/deps"
	"github.com/miradam/aaa-onboarding-portal/internal/app/services"
	portalhttp "github.com/miradam/aaa-onboarding-portal/internal/http"
	handlerApprove "github.com/miradam/aaa-onboarding-portal/internal/http/handlers/approve_access"
	"github.com/miradam/aaa-onboarding-portal/internal/http/handlers/captcha"
	handlerNewUser "github.com/miradam/aaa-onboarding-portal/internal/http/handlers/new_user"
	"github.com/miradam/aaa-onboarding-portal/internal/http/handlers/pages"
	handlerRequest "github.com/miradam/aaa-onboarding-portal/internal/http/handlers/request_access"
)

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	renderer := deps.Renderer

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Use(captcha.SetCaptchaTokenToContext)

	router.Method(http.MethodGet, "/", pages.NewStatic(renderer, "layout"))
	router.Method(http.MethodGet, "/complete", pages.NewStatic(renderer, "complete"))

	newUser := handlerNewUser.New(s.RegisterUser, renderer)
	router.Method(http.MethodGet, "/new_user", newUser)
	router.Method(http.MethodPost, "/new_user", newUser)

	requestAccess := handlerRequest.New(s.RequestReset, renderer)
	router.Method(http.MethodGet, "/request_access", requestAccess)
	router.Method(http.MethodPost, "/request_access", requestAccess)

	approveAccess := handlerApprove.New(s.ApproveReset, renderer, "/approve_access")
	router.Method(http.MethodGet, "/approve_access", approveAccess)
	router.Method(http.MethodPost, "/approve_access", approveAccess)

	manageAccess := handlerApprove.New(s.ApproveReset, renderer, "/manage_access")
	router.Method(http.MethodGet, "/manage_access", manageAccess)
	router.Method(http.MethodPost, "/manage_access", manageAccess)

	router.Handle("/assets/*", portalhttp.Assets())

	return &http.Server{
		Handler: router,
		Addr:    deps.Config.HTTPAddress,
	}
}
