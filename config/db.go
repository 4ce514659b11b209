package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"hotel-pms/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// EnvOrDefault returns the trimmed env value or the fallback.
func EnvOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

// JWTSecret returns the signing key for staff tokens.
func JWTSecret() []byte {
	return []byte(EnvOrDefault("JWT_SECRET", "hotel-pms-dev-secret"))
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

	user := EnvOrDefault("DB_USER", "root")
	pass := EnvOrDefault("DB_PASS", "")
	host := EnvOrDefault("DB_HOST", "127.0.0.1")
	port := EnvOrDefault("DB_PORT", "3306")
	dbName := EnvOrDefault("DB_NAME", "hotel_pms")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

// SeedDatabase creates the default manager account, the hotel record, a
// starter room block and a minimal service catalog when the tables are empty.
func SeedDatabase() {
	var staffCount int64
	DB.Model(&models.Staff{}).Count(&staffCount)
	if staffCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(EnvOrDefault("ADMIN_PASSWORD", "admin123")), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("warning: failed to hash default manager password: %v", err)
		} else {
			manager := models.Staff{
				FullName:  "Front Desk Manager",
				Username:  "admin",
				Password:  string(hash),
				IsManager: true,
			}
			if err := DB.Create(&manager).Error; err != nil {
				log.Printf("warning: failed to create default manager: %v", err)
			} else {
				log.Println("Default manager seeded")
			}
		}
	}

	var hotelCount int64
	DB.Model(&models.Hotel{}).Count(&hotelCount)
	var hotel models.Hotel
	if hotelCount == 0 {
		hotel = models.Hotel{
			Name: EnvOrDefault("HOTEL_NAME", "Main Property"),
			Code: EnvOrDefault("HOTEL_CODE", "MAIN"),
		}
		if err := DB.Create(&hotel).Error; err != nil {
			log.Printf("warning: failed to seed hotel: %v", err)
			return
		}
		log.Println("Hotel seeded")
	} else {
		DB.First(&hotel)
	}

	var roomCount int64
	DB.Model(&models.Room{}).Count(&roomCount)
	if roomCount == 0 {
		rooms := []models.Room{
			{HotelID: hotel.ID, RoomNumber: "101", RoomType: "Standard", PricePerNight: 500000, Status: models.RoomStatusVacant},
			{HotelID: hotel.ID, RoomNumber: "102", RoomType: "Standard", PricePerNight: 500000, Status: models.RoomStatusVacant},
			{HotelID: hotel.ID, RoomNumber: "201", RoomType: "Deluxe", PricePerNight: 800000, Status: models.RoomStatusVacant},
			{HotelID: hotel.ID, RoomNumber: "202", RoomType: "Deluxe", PricePerNight: 800000, Status: models.RoomStatusVacant},
		}
		DB.Create(&rooms)
		log.Println("Rooms seeded")
	}

	var itemCount int64
	DB.Model(&models.ServiceItem{}).Count(&itemCount)
	if itemCount == 0 {
		items := []models.ServiceItem{
			{ItemName: "Drinking Water", Price: 10000},
			{ItemName: "Laundry", Price: 50000},
			{ItemName: "Late Checkout Fee", Price: 100000},
		}
		DB.Create(&items)
		log.Println("Service items seeded")
	}
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	// AutoMigrate in parent->child order.
	if err := DB.AutoMigrate(
		&models.Staff{},
		&models.Hotel{},
		&models.Room{},
		&models.Guest{},
		&models.Reservation{},
		&models.ServiceItem{},
		&models.ServiceCharge{},
		&models.GuestRequest{},
		&models.StaffSchedule{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}
