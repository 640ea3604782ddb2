package database

import (
	"log"

	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/serviflow/serviflow-api/internal/domain/entity"
)

// SeedDefaultData seeds the database with default roles, permissions, master
// data and the optional bootstrap admin user.
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	permissions := []entity.Permission{
		{Name: "view-dashboard", GuardName: "web"},
		{Name: "manage-clients", GuardName: "web"},
		{Name: "manage-providers", GuardName: "web"},
		{Name: "manage-catalog", GuardName: "web"},
		{Name: "manage-quotations", GuardName: "web"},
		{Name: "manage-collections", GuardName: "web"},
		{Name: "manage-cuentas", GuardName: "web"},
		{Name: "manage-contracts", GuardName: "web"},
		{Name: "manage-tasks", GuardName: "web"},
		{Name: "manage-masterdata", GuardName: "web"},
		{Name: "manage-company", GuardName: "web"},
		{Name: "manage-users", GuardName: "web"},
	}

	for i := range permissions {
		var existing entity.Permission
		if err := db.Where("name = ?", permissions[i].Name).First(&existing).Error; err != nil {
			if err := db.Create(&permissions[i]).Error; err != nil {
				log.Printf("Warning: failed to create permission %s: %v", permissions[i].Name, err)
			}
		}
	}

	var allPermissions []entity.Permission
	db.Find(&allPermissions)

	seedRole(db, "super-admin", allPermissions)
	seedRole(db, "admin", allPermissions)

	staffNames := []string{
		"view-dashboard",
		"manage-clients",
		"manage-quotations",
		"manage-collections",
		"manage-tasks",
	}
	seedRole(db, "staff", pickPermissions(allPermissions, staffNames))

	seedMasterData(db)
	seedAdminUser(db)

	log.Println("Default data seeding completed")
	return nil
}

func seedRole(db *gorm.DB, name string, perms []entity.Permission) {
	var role entity.Role
	if err := db.Where("name = ?", name).First(&role).Error; err != nil {
		role = entity.Role{
			Name:        name,
			GuardName:   "web",
			Permissions: perms,
		}
		if err := db.Create(&role).Error; err != nil {
			log.Printf("Warning: failed to create role %s: %v", name, err)
		}
	}
}

func pickPermissions(all []entity.Permission, names []string) []entity.Permission {
	var picked []entity.Permission
	for _, name := range names {
		for _, p := range all {
			if p.Name == name {
				picked = append(picked, p)
				break
			}
		}
	}
	return picked
}

func seedMasterData(db *gorm.DB) {
	var count int64
	db.Model(&entity.Country{}).Count(&count)
	if count > 0 {
		return
	}

	colombia := entity.Country{Name: "Colombia", Code: "CO"}
	if err := db.Create(&colombia).Error; err != nil {
		log.Printf("Warning: failed to seed countries: %v", err)
		return
	}

	cities := []entity.City{
		{CountryID: colombia.ID, Name: "Bogotá"},
		{CountryID: colombia.ID, Name: "Medellín"},
		{CountryID: colombia.ID, Name: "Cali"},
		{CountryID: colombia.ID, Name: "Barranquilla"},
	}
	if err := db.Create(&cities).Error; err != nil {
		log.Printf("Warning: failed to seed cities: %v", err)
	}

	sectors := []entity.Sector{
		{Name: "Tecnología"},
		{Name: "Construcción"},
		{Name: "Salud"},
		{Name: "Educación"},
		{Name: "Comercio"},
	}
	if err := db.Create(&sectors).Error; err != nil {
		log.Printf("Warning: failed to seed sectors: %v", err)
	}
}

func seedAdminUser(db *gorm.DB) {
	adminEmail := viper.GetString("ADMIN_EMAIL")
	adminPassword := viper.GetString("ADMIN_PASSWORD")
	if adminEmail == "" || adminPassword == "" {
		return
	}

	var existing entity.User
	if err := db.Where("email = ?", adminEmail).First(&existing).Error; err == nil {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Warning: failed to hash admin password: %v", err)
		return
	}

	var superAdmin entity.Role
	if err := db.Where("name = ?", "super-admin").First(&superAdmin).Error; err != nil {
		log.Printf("Warning: super-admin role missing: %v", err)
		return
	}

	admin := entity.User{
		FirstName: "Admin",
		LastName:  "Serviflow",
		Email:     adminEmail,
		Password:  string(hashed),
		Roles:     []entity.Role{superAdmin},
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("Warning: failed to create admin user: %v", err)
	}
}
