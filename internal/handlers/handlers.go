package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/prizepanda/docs"
	accounthandlers "github.com/GlebRadaev/prizepanda/internal/handlers/account"
	authhandlers "github.com/GlebRadaev/prizepanda/internal/handlers/auth"
	metahandlers "github.com/GlebRadaev/prizepanda/internal/handlers/meta"
	redemptionhandlers "github.com/GlebRadaev/prizepanda/internal/handlers/redemption"
	withdrawalhandlers "github.com/GlebRadaev/prizepanda/internal/handlers/withdrawal"
	"github.com/GlebRadaev/prizepanda/internal/service"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	AdminLogin(w http.ResponseWriter, r *http.Request)
}

type AccountHandler interface {
	GetUser(w http.ResponseWriter, r *http.Request)
	ListUsers(w http.ResponseWriter, r *http.Request)
	Overview(w http.ResponseWriter, r *http.Request)
}

type RedemptionHandler interface {
	Redeem(w http.ResponseWriter, r *http.Request)
	ListRedemptions(w http.ResponseWriter, r *http.Request)
	ListCodes(w http.ResponseWriter, r *http.Request)
	CreateCode(w http.ResponseWriter, r *http.Request)
	DeactivateCode(w http.ResponseWriter, r *http.Request)
}

type WithdrawalHandler interface {
	Withdraw(w http.ResponseWriter, r *http.Request)
	ListWithdrawals(w http.ResponseWriter, r *http.Request)
	ListAll(w http.ResponseWriter, r *http.Request)
	Resolve(w http.ResponseWriter, r *http.Request)
}

type MetaHandler interface {
	Config(w http.ResponseWriter, r *http.Request)
	DonateQR(w http.ResponseWriter, r *http.Request)
}

// Middleware guards the user and admin route groups.
type Middleware interface {
	Authenticate(next http.Handler) http.Handler
	RequireAdmin(next http.Handler) http.Handler
}

type Handlers struct {
	AuthHandler       AuthHandler
	AccountHandler    AccountHandler
	RedemptionHandler RedemptionHandler
	WithdrawalHandler WithdrawalHandler
	MetaHandler       MetaHandler
	Middleware        Middleware
}

func New(s *service.Services, mw Middleware, meta metahandlers.Options) *Handlers {
	return &Handlers{
		AuthHandler:       authhandlers.New(s.AuthService),
		AccountHandler:    accounthandlers.New(s.AccountService),
		RedemptionHandler: redemptionhandlers.New(s.RedemptionService),
		WithdrawalHandler: withdrawalhandlers.New(s.WithdrawalService),
		MetaHandler:       metahandlers.New(meta),
		Middleware:        mw,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)
		r.Get("/config", h.MetaHandler.Config)
		r.Get("/donate/qr", h.MetaHandler.DonateQR)

		r.Group(func(r chi.Router) {
			r.Use(h.Middleware.Authenticate)
			r.Post("/logout", h.AuthHandler.Logout)
			r.Get("/user", h.AccountHandler.GetUser)
			r.Post("/redeem", h.RedemptionHandler.Redeem)
			r.Get("/redemptions", h.RedemptionHandler.ListRedemptions)
			r.Post("/withdraw", h.WithdrawalHandler.Withdraw)
			r.Get("/withdrawals", h.WithdrawalHandler.ListWithdrawals)

			r.Route("/admin", func(r chi.Router) {
				r.Post("/login", h.AuthHandler.AdminLogin)

				r.Group(func(r chi.Router) {
					r.Use(h.Middleware.RequireAdmin)
					r.Get("/overview", h.AccountHandler.Overview)
					r.Get("/users", h.AccountHandler.ListUsers)
					r.Route("/gift-codes", func(r chi.Router) {
						r.Get("/", h.RedemptionHandler.ListCodes)
						r.Post("/", h.RedemptionHandler.CreateCode)
						r.Delete("/{id}", h.RedemptionHandler.DeactivateCode)
					})
					r.Route("/withdrawals", func(r chi.Router) {
						r.Get("/", h.WithdrawalHandler.ListAll)
						r.Patch("/{id}", h.WithdrawalHandler.Resolve)
					})
				})
			})
		})
	})

	return r
}
