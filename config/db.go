package config

import (
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"hotel-receptionist/models"

	"gorm.io/datatypes"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := os.Getenv("DB_PASS")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "hotel_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

// useMySQL: MySQL only when explicitly configured; the embedded SQLite file
// is the default so the app runs with zero external services.
func useMySQL() bool {
	return os.Getenv("MYSQL_URL") != "" || os.Getenv("DATABASE_URL") != "" || os.Getenv("DB_HOST") != ""
}

// ConnectDatabase opens the store, migrates the schema and seeds reference
// data. The returned handle is passed into the services; there is no
// package-level DB global.
func ConnectDatabase() (*gorm.DB, error) {
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	var dialector gorm.Dialector
	if useMySQL() {
		dsn, err := resolveMySQLDSN()
		if err != nil {
			return nil, err
		}
		dialector = mysql.Open(dsn)
	} else {
		// WAL + busy timeout so concurrent bookings for unrelated rooms
		// don't trip SQLite's single-writer lock.
		path := envOrDefault("HOTEL_DB_PATH", "hotel.db")
		dialector = sqlite.Open(fmt.Sprintf("%s?_journal_mode=WAL&_busy_timeout=5000", path))
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: newLogger})
	if err != nil {
		return nil, err
	}

	// AutoMigrate in parent->child order
	if err := db.AutoMigrate(
		&models.RoomType{},
		&models.Room{},
		&models.Reservation{},
	); err != nil {
		return nil, err
	}

	if err := SeedDatabase(db); err != nil {
		return nil, err
	}
	return db, nil
}

func amenities(items ...string) datatypes.JSON {
	b, err := json.Marshal(items)
	if err != nil {
		log.Printf("warning: failed to marshal amenities: %v", err)
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(b)
}

// SeedDatabase inserts room types and the room inventory. Seeding is
// idempotent: rerunning it against a populated store is a no-op.
func SeedDatabase(db *gorm.DB) error {
	// ---------------- RoomTypes ----------------
	var rtCount int64
	db.Model(&models.RoomType{}).Count(&rtCount)

	if rtCount == 0 {
		roomTypes := []models.RoomType{
			{TypeName: models.RoomTypeStandard, Description: "Standard Room", MaxGuests: 2},
			{TypeName: models.RoomTypeDeluxe, Description: "Deluxe Room", MaxGuests: 3},
			{TypeName: models.RoomTypeSuite, Description: "Suite", MaxGuests: 4},
		}
		if err := db.Create(&roomTypes).Error; err != nil {
			return fmt.Errorf("failed to seed room types: %w", err)
		}
		log.Println("RoomTypes seeded")
	}

	// ---------------- Rooms ----------------
	var roomCount int64
	db.Model(&models.Room{}).Count(&roomCount)
	if roomCount > 0 {
		log.Println("Rooms already seeded")
		return nil
	}

	typeID := func(typeName string) *uint {
		var rt models.RoomType
		if err := db.Where("type_name = ?", typeName).First(&rt).Error; err != nil {
			log.Printf("warning: room type %q not found during seeding: %v", typeName, err)
			return nil
		}
		id := rt.ID
		return &id
	}

	rooms := []models.Room{
		{
			RoomNumber:   "501",
			Name:         "Deluxe Suite",
			Type:         models.RoomTypeSuite,
			RoomTypeID:   typeID(models.RoomTypeSuite),
			Rate:         420,
			MaxOccupancy: 4,
			Description:  "Spacious suite with a king bed, private balcony, and panoramic bay view.",
			Amenities:    amenities("wifi", "king bed", "balcony", "bay view", "minibar"),
		},
		{
			RoomNumber:   "401",
			Name:         "Ocean View Room",
			Type:         models.RoomTypeDeluxe,
			RoomTypeID:   typeID(models.RoomTypeDeluxe),
			Rate:         320,
			MaxOccupancy: 3,
			Description:  "Elegant room with ocean-facing windows and a queen bed.",
			Amenities:    amenities("wifi", "queen bed", "ocean view", "minibar"),
		},
		{
			RoomNumber:   "301",
			Name:         "Garden View Room",
			Type:         models.RoomTypeStandard,
			RoomTypeID:   typeID(models.RoomTypeStandard),
			Rate:         250,
			MaxOccupancy: 2,
			Description:  "Cozy room overlooking the hotel gardens, ideal for couples.",
			Amenities:    amenities("wifi", "queen bed", "garden view"),
		},
		{
			RoomNumber:   "101",
			Name:         "Standard Room",
			Type:         models.RoomTypeStandard,
			RoomTypeID:   typeID(models.RoomTypeStandard),
			Rate:         180,
			MaxOccupancy: 2,
			Description:  "Comfortable, affordable option with all essential amenities.",
			Amenities:    amenities("wifi", "double bed"),
		},
	}

	if err := db.Create(&rooms).Error; err != nil {
		return fmt.Errorf("failed to seed rooms: %w", err)
	}
	log.Println("Rooms seeded")
	return nil
}
