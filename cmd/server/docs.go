package main

// @title Comic Commerce API
// @version 1.0
// @description E-commerce backend for a comic store: catalog, user accounts and wishlists with full observability stack (Prometheus, Jaeger)
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://github.com/franvila/comic-commerce
// @contact.email support@example.com

// @license.name MIT
// @license.url https://github.com/franvila/comic-commerce/blob/main/LICENSE

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey TokenAuth
// @in header
// @name Authorization
// @description Type "Token" followed by a space and the token key.

// @tag.name Auth
// @tag.description Authentication endpoints

// @tag.name Users
// @tag.description User management endpoints

// @tag.name Comics
// @tag.description Comic catalog endpoints

// @tag.name Wishlist
// @tag.description Wishlist endpoints

// @tag.name Health
// @tag.description Health check endpoints
