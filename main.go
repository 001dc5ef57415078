package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "thuchi/docs"
)

var (
	store Store
	wf    *Workflow
)

// @title Thu Chi API
// @version 1.0
// @description Income and expense ledger with an approval workflow, settlement and role based permissions.
// @BasePath /
func main() {
	jwtSecret = []byte(getEnvOrDefault("JWT_SECRET", "thuchi-dev-secret"))
	uploadDir = getEnvOrDefault("UPLOAD_DIR", "uploads")

	// Database connection with defaults
	dbHost := getEnvOrDefault("DB_HOST", "localhost")
	dbPort := getEnvOrDefault("DB_PORT", "5432")
	dbUser := getEnvOrDefault("DB_USER", "postgres")
	dbPassword := getEnvOrDefault("DB_PASSWORD", "password")
	dbName := getEnvOrDefault("DB_NAME", "thuchi")

	if dbHost == "memory" {
		// Local mode without Postgres, useful for demos and frontend work.
		log.Println("DB_HOST=memory, using in-memory store")
		store = newMemStore()
	} else {
		connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			dbHost, dbPort, dbUser, dbPassword, dbName)

		// Connect to database with retry logic
		var pool *pgxpool.Pool
		var err error
		maxRetries := 30
		retryInterval := time.Second * 2

		for i := 0; i < maxRetries; i++ {
			pool, err = pgxpool.New(context.Background(), connStr)
			if err != nil {
				log.Printf("Attempt %d: Error opening database: %v", i+1, err)
				time.Sleep(retryInterval)
				continue
			}

			if err = pool.Ping(context.Background()); err != nil {
				log.Printf("Attempt %d: Error connecting to database: %v", i+1, err)
				pool.Close()
				time.Sleep(retryInterval)
				continue
			}

			log.Println("Successfully connected to database")
			break
		}

		if err != nil {
			log.Fatal("Failed to connect to database after retries: ", err)
		}
		defer pool.Close()

		// Run database migrations
		migrationsPath := filepath.Join(".", "db", "migrations")

		if _, err := os.Stat(migrationsPath); os.IsNotExist(err) {
			log.Printf("Migrations directory not found at %s, skipping migrations", migrationsPath)
		} else {
			log.Println("Running database migrations...")
			migrationDB, err := sql.Open("postgres", connStr)
			if err != nil {
				log.Fatal("Error opening migration connection: ", err)
			}
			if err := runMigrations(migrationDB, migrationsPath); err != nil {
				log.Fatal("Error running migrations: ", err)
			}

			// Display current migration version
			if version, dirty, err := getMigrationVersion(migrationDB, migrationsPath); err == nil {
				if dirty {
					log.Printf("Current migration version: %d (DIRTY - migration failed)", version)
				} else {
					log.Printf("Current migration version: %d", version)
				}
			}
			migrationDB.Close()
			log.Println("Database migrations completed successfully")
		}

		store = newPGStore(pool)
	}

	wf = NewWorkflow(store)

	if err := seedIfEmpty(store); err != nil {
		log.Fatal("Error seeding defaults: ", err)
	}

	r := setupRouter()

	port := getEnvOrDefault("PORT", "8080")
	log.Printf("Server starting on port %s", port)
	r.Run(":" + port)
}

func setupRouter() *gin.Engine {
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{getEnvOrDefault("FRONTEND_ORIGIN", "http://localhost:3001")},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	r.Static("/uploads", uploadDir)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Routes
	r.POST("/api/auth/login", login)
	r.POST("/api/auth/logout", logout)

	api := r.Group("/api")
	api.Use(authMiddleware())
	{
		api.GET("/auth/me", currentUser)

		api.GET("/transactions", getTransactions)
		api.POST("/transactions", createTransaction)
		api.GET("/transactions/:id", getTransaction)
		api.PUT("/transactions/:id", updateTransaction)
		api.DELETE("/transactions/:id", deleteTransaction)
		api.POST("/transactions/:id/restore", restoreTransaction)
		api.POST("/transactions/:id/approve", approveTransaction)
		api.POST("/transactions/:id/reject", rejectTransaction)
		api.POST("/transactions/:id/revoke", revokeDecision)

		api.GET("/settlements", getSettlements)
		api.POST("/settlements/:id/settle", settleTransaction)
		api.POST("/settlements/:id/unsettle", unsettleTransaction)
		api.POST("/settlements/batch", settleBatch)

		api.GET("/categories", getCategories)
		api.POST("/categories", createCategory)
		api.PUT("/categories/:id", updateCategory)
		api.DELETE("/categories/:id", deleteCategory)

		api.GET("/units", getUnits)
		api.POST("/units", createUnit)
		api.PUT("/units/:id", updateUnit)
		api.DELETE("/units/:id", deleteUnit)

		api.GET("/partners", getPartners)
		api.POST("/partners", createPartner)
		api.PUT("/partners/:id", updatePartner)
		api.DELETE("/partners/:id", deletePartner)

		api.GET("/reports/summary", getSummary)
		api.GET("/reports/export", exportTransactions)

		api.POST("/uploads", uploadAttachment)

		api.GET("/users", getUsers)
		api.POST("/users", createUser)
		api.PUT("/users/:id", updateUser)
		api.DELETE("/users/:id", deleteUser)

		api.GET("/roles", getRoles)
		api.POST("/roles", createRole)
		api.PUT("/roles/:id", updateRole)
		api.DELETE("/roles/:id", deleteRole)

		api.GET("/permissions", getPermissions)
		api.POST("/admin/seed", seedSystemData)
	}

	return r
}
