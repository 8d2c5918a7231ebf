package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"shikshaksangh_backend/internals/configs"
	aboutModel "shikshaksangh_backend/internals/features/contents/about/model"
	downloadModel "shikshaksangh_backend/internals/features/contents/downloads/model"
	galleryModel "shikshaksangh_backend/internals/features/contents/gallery/model"
	newsModel "shikshaksangh_backend/internals/features/contents/news/model"
	noticeModel "shikshaksangh_backend/internals/features/contents/notices/model"
	teamModel "shikshaksangh_backend/internals/features/contents/team/model"
	contactModel "shikshaksangh_backend/internals/features/contact/model"
	memberModel "shikshaksangh_backend/internals/features/members/member/model"
	adminModel "shikshaksangh_backend/internals/features/users/admin/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 connecting to PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=shikshaksangh&options=-c statement_timeout=3000",
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
	}), &gorm.Config{
		Logger:         configs.NewGormLogger(),
		TranslateError: true, // unique-violation -> gorm.ErrDuplicatedKey
	})
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

func WarmUpQueries() {
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

// MigrateAll creates/updates every table plus the unique indexes backing the
// duplicate checks (email, sparse membership number, news slug).
func MigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		&memberModel.MemberApplicationModel{},
		&newsModel.NewsModel{},
		&noticeModel.NoticeModel{},
		&downloadModel.DownloadModel{},
		&aboutModel.AboutModel{},
		&teamModel.TeamMemberModel{},
		&galleryModel.GalleryPhotoModel{},
		&contactModel.ContactMessageModel{},
		&adminModel.AdminUserModel{},
	)
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
