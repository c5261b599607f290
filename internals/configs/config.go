package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	JWTSecret string

	// Credenciales del servicio de auth (Supabase). Las tres son obligatorias
	// para el aprovisionamiento de usuarios; su ausencia es un error de
	// configuración (500), no de request.
	AuthBaseURL    string
	AuthAnonKey    string
	AuthServiceKey string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ No se encontró archivo .env, usando ENV del sistema")
		} else {
			log.Println("✅ Archivo .env cargado")
		}
	} else {
		log.Println("🚀 Entorno Railway, usando ENV del sistema")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	AuthBaseURL = GetEnv("SUPABASE_URL")
	AuthAnonKey = GetEnv("SUPABASE_ANON_KEY")
	AuthServiceKey = GetEnv("SUPABASE_SERVICE_ROLE_KEY")

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET no está definido!")
	} else {
		log.Println("✅ JWT_SECRET cargado.")
	}
	if AuthBaseURL == "" {
		log.Println("❌ SUPABASE_URL no está definido!")
	}
	if AuthAnonKey == "" {
		log.Println("❌ SUPABASE_ANON_KEY no está definido!")
	}
	if AuthServiceKey == "" {
		log.Println("❌ SUPABASE_SERVICE_ROLE_KEY no está definido!")
	}
}

// ProvisioningReady indica si las tres credenciales del servicio de auth
// están presentes.
func ProvisioningReady() bool {
	return AuthBaseURL != "" && AuthAnonKey != "" && AuthServiceKey != ""
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
