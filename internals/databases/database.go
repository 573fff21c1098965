package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	aboutModel "aidjourney_backend/internals/features/sitecontent/about/model"
	bannerModel "aidjourney_backend/internals/features/sitecontent/banner/model"
	contactModel "aidjourney_backend/internals/features/sitecontent/contact/model"
	eventModel "aidjourney_backend/internals/features/sitecontent/events/model"
	impactModel "aidjourney_backend/internals/features/sitecontent/impact/model"
	newsModel "aidjourney_backend/internals/features/sitecontent/news/model"
	programModel "aidjourney_backend/internals/features/sitecontent/program/model"
	storyModel "aidjourney_backend/internals/features/sitecontent/story/model"
	userModel "aidjourney_backend/internals/features/users/auth/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Connecting to PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=aidjourney&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // PgBouncer friendly
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ DB connect failed: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate keeps the content tables in sync. Order matters for the FK chains
// (about -> items, category -> event -> photo).
func Migrate() {
	if err := DB.AutoMigrate(
		&userModel.UserModel{},
		&userModel.RefreshTokenModel{},
		&bannerModel.BannerModel{},
		&aboutModel.AboutSectionModel{},
		&aboutModel.WhatWeDoItemModel{},
		&aboutModel.JourneyEntryModel{},
		&programModel.ProgramModel{},
		&impactModel.ImpactStatModel{},
		&storyModel.StoryModel{},
		&newsModel.NewsModel{},
		&contactModel.ContactMessageModel{},
		&contactModel.ContactInfoModel{},
		&eventModel.EventCategoryModel{},
		&eventModel.EventModel{},
		&eventModel.EventPhotoModel{},
	); err != nil {
		log.Fatalf("❌ migrate failed: %v", err)
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
