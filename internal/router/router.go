package router

import (
	"github.com/jayakosta/Personal-Finance-Tracker/internal/chat"
	"github.com/jayakosta/Personal-Finance-Tracker/internal/config"
	"github.com/jayakosta/Personal-Finance-Tracker/internal/handler"
	"github.com/jayakosta/Personal-Finance-Tracker/internal/ledger"
	"github.com/jayakosta/Personal-Finance-Tracker/internal/middleware"
	"github.com/jayakosta/Personal-Finance-Tracker/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// SetupRouter configures the Gin engine, templates and routes.
func SetupRouter(cfg *config.Config, db *gorm.DB, log zerolog.Logger) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(middleware.RequestLogger(log), gin.Recovery())

	// static files and templates
	r.Static("/static", "./web/static")
	r.LoadHTMLGlob("web/templates/*")

	sessions := session.NewManager(db, cfg.Session.TTL())
	store := ledger.NewStore(db)
	bridge := chat.NewBridge(chat.Config{
		APIKey:  cfg.Chat.APIKey,
		BaseURL: cfg.Chat.BaseURL,
		Model:   cfg.Chat.Model,
		Timeout: cfg.Chat.Timeout(),
	}, log.With().Str("component", "chat").Logger())

	authHandler := handler.NewAuthHandler(db, sessions, cfg.Session.Secret, cfg.Session.CookieName, log)
	txHandler := handler.NewTransactionHandler(store, log)
	chatHandler := handler.NewChatHandler(store, bridge, log)
	exportHandler := handler.NewExportHandler(store, log)

	r.GET("/", authHandler.ShowLogin)
	r.GET("/signup", authHandler.ShowSignup)
	r.POST("/signup", authHandler.Signup)
	r.POST("/login", authHandler.Login)
	r.GET("/logout", authHandler.Logout)

	protected := r.Group("")
	protected.Use(middleware.AuthMiddleware(cfg.Session.CookieName, cfg.Session.Secret, sessions))

	protected.GET("/dashboard", txHandler.Dashboard)
	protected.POST("/add_transaction", txHandler.AddTransaction)
	protected.GET("/chat", chatHandler.Show)
	protected.POST("/chat", chatHandler.Ask)
	protected.GET("/export_pdf", exportHandler.ExportPDF)
	protected.GET("/export_csv", exportHandler.ExportCSV)
	protected.GET("/export_xlsx", exportHandler.ExportXLSX)

	return r
}
