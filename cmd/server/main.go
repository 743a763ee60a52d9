package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"minimart_back_end/internal/cache"
	"minimart_back_end/internal/cart"
	"minimart_back_end/internal/config"
	"minimart_back_end/internal/handlers"
	"minimart_back_end/internal/middleware"
	"minimart_back_end/internal/payment"
	"minimart_back_end/internal/routes"
)

func main() {
	config.Load()

	if err := payment.Init(); err != nil {
		log.Fatal("❌ Cannot initialise PayOS: ", err)
	}
	log.Println("✅ PayOS initialised")

	middleware.InitSessionStore()

	var carts cart.Store
	if err := cache.InitRedis(); err != nil {
		log.Println("⚠️ Redis unavailable, carts held in memory:", err)
		carts = cart.NewMemoryStore()
	} else {
		carts = cart.NewRedisStore(cache.RedisClient)
	}

	r := gin.Default()
	r.Use(cors.Default())
	r.Use(middleware.CartSession())
	r.LoadHTMLGlob("web/templates/*.html")
	r.Static("/static", "./web/static")

	h := &handlers.Handler{
		Carts:    carts,
		Provider: payment.PayOS{},
		BaseURL:  config.BaseURL(),
	}
	routes.RegisterRoutes(r, h)

	port := config.Port()
	log.Println("🚀 Mini-mart server running on port", port)
	log.Println("📦 PayOS demo shop ready!")
	r.Run(":" + port)
}
