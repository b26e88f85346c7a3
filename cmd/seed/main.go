// cmd/seed/main.go
package main

import (
	"flag"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/shoply/storefront/internal/config"
	"github.com/shoply/storefront/internal/database"
	"github.com/shoply/storefront/internal/models"
)

func main() {
	destroy := flag.Bool("d", false, "destroy all data instead of importing")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration: ", err)
	}

	db, err := database.Initialize(cfg.Database)
	if err != nil {
		logrus.Fatal("Failed to initialize database: ", err)
	}
	defer database.Close(db)

	if err := database.RunMigrations(db); err != nil {
		logrus.Fatal("Failed to run migrations: ", err)
	}

	if *destroy {
		if err := destroyData(db); err != nil {
			logrus.Fatal("Error destroying data: ", err)
		}
		logrus.Info("All data destroyed successfully")
		return
	}

	if err := importData(db); err != nil {
		logrus.Fatal("Error importing data: ", err)
	}
}

func destroyData(db *gorm.DB) error {
	for _, model := range []interface{}{
		&models.OrderItem{},
		&models.Order{},
		&models.Review{},
		&models.Product{},
		&models.User{},
	} {
		if err := db.Unscoped().Where("1 = 1").Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}

func importData(db *gorm.DB) error {
	if err := destroyData(db); err != nil {
		return err
	}
	logrus.Info("Existing data cleared")

	users, err := seedUsers(db)
	if err != nil {
		return err
	}
	logrus.Infof("%d users imported", len(users))

	products, err := seedProducts(db, users)
	if err != nil {
		return err
	}
	logrus.Infof("%d products imported", len(products))

	orders, err := seedOrders(db, users, products)
	if err != nil {
		return err
	}
	logrus.Infof("%d orders imported", len(orders))

	logrus.Info("Seeding completed successfully")
	logrus.Info("Default admin user: admin@example.com / admin123")
	logrus.Info("Regular users: john@example.com, jane@example.com / password123")
	return nil
}

func seedUsers(db *gorm.DB) ([]models.User, error) {
	users := []struct {
		name     string
		email    string
		password string
		isAdmin  bool
		address  models.Address
	}{
		{
			name: "Admin User", email: "admin@example.com", password: "admin123", isAdmin: true,
			address: models.Address{Street: "123 Admin Street", City: "New York", State: "NY", ZipCode: "10001", Country: "USA"},
		},
		{
			name: "John Doe", email: "john@example.com", password: "password123",
			address: models.Address{Street: "456 Main Street", City: "Los Angeles", State: "CA", ZipCode: "90210", Country: "USA"},
		},
		{
			name: "Jane Smith", email: "jane@example.com", password: "password123",
			address: models.Address{Street: "789 Oak Avenue", City: "Chicago", State: "IL", ZipCode: "60614", Country: "USA"},
		},
	}

	created := make([]models.User, 0, len(users))
	for _, u := range users {
		user := models.User{
			Name:    u.name,
			Email:   u.email,
			IsAdmin: u.isAdmin,
			Address: u.address,
		}
		if err := user.SetPassword(u.password); err != nil {
			return nil, err
		}
		if err := db.Create(&user).Error; err != nil {
			return nil, err
		}
		created = append(created, user)
	}
	return created, nil
}

func seedProducts(db *gorm.DB, users []models.User) ([]models.Product, error) {
	products := []models.Product{
		{
			Name:        "iPhone 15 Pro",
			Description: "Latest Apple iPhone with A17 Pro chip, titanium design, and advanced camera system.",
			Price:       999.99, Category: "Electronics", Brand: "Apple", Stock: 50,
			Image: "/uploads/iphone15pro.jpg", Rating: 4.8, NumReviews: 125,
		},
		{
			Name:        "Samsung Galaxy S24 Ultra",
			Description: "Premium Android smartphone with S Pen, advanced AI features, and exceptional camera.",
			Price:       1199.99, Category: "Electronics", Brand: "Samsung", Stock: 30,
			Image: "/uploads/galaxys24ultra.jpg", Rating: 4.7, NumReviews: 89,
		},
		{
			Name:        "MacBook Air M3",
			Description: "13-inch laptop with M3 chip, up to 18 hours battery life, and stunning Liquid Retina display.",
			Price:       1099.99, Category: "Computers", Brand: "Apple", Stock: 25,
			Image: "/uploads/macbookairm3.jpg", Rating: 4.9, NumReviews: 67,
		},
		{
			Name:        "Dell XPS 13",
			Description: "Ultra-portable laptop with Intel Core i7, 16GB RAM, and InfinityEdge display.",
			Price:       1299.99, Category: "Computers", Brand: "Dell", Stock: 20,
			Image: "/uploads/dellxps13.jpg", Rating: 4.6, NumReviews: 43,
		},
		{
			Name:        "Sony WH-1000XM5 Headphones",
			Description: "Industry-leading noise canceling wireless headphones with 30-hour battery life.",
			Price:       399.99, Category: "Audio", Brand: "Sony", Stock: 40,
			Image: "/uploads/sonywh1000xm5.jpg", Rating: 4.8, NumReviews: 156,
		},
		{
			Name:        "AirPods Pro 2nd Gen",
			Description: "Active Noise Cancellation wireless earbuds with personalized spatial audio.",
			Price:       249.99, Category: "Audio", Brand: "Apple", Stock: 60,
			Image: "/uploads/airpodspro2.jpg", Rating: 4.7, NumReviews: 234,
		},
		{
			Name:        "Nike Air Max 270",
			Description: "Comfortable running shoes with Max Air unit and breathable mesh upper.",
			Price:       149.99, Category: "Footwear", Brand: "Nike", Stock: 80,
			Image: "/uploads/nikeairmax270.jpg", Rating: 4.5, NumReviews: 178,
		},
		{
			Name:        "Adidas Ultraboost 22",
			Description: "Premium running shoes with Boost midsole and Primeknit upper for ultimate comfort.",
			Price:       189.99, Category: "Footwear", Brand: "Adidas", Stock: 45,
			Image: "/uploads/adidasultraboost22.jpg", Rating: 4.6, NumReviews: 92,
		},
		{
			Name:        "Levi's 501 Original Jeans",
			Description: "Classic straight-leg jeans with button fly and iconic styling.",
			Price:       79.99, Category: "Clothing", Brand: "Levi's", Stock: 100,
			Image: "/uploads/levis501.jpg", Rating: 4.4, NumReviews: 87,
		},
		{
			Name:        "Champion Reverse Weave Hoodie",
			Description: "Premium heavyweight hoodie with iconic C logo and reverse weave construction.",
			Price:       69.99, Category: "Clothing", Brand: "Champion", Stock: 70,
			Image: "/uploads/championhoodie.jpg", Rating: 4.5, NumReviews: 64,
		},
		{
			Name:        "Instant Pot Duo 7-in-1",
			Description: "Multi-functional pressure cooker that replaces 7 kitchen appliances.",
			Price:       99.99, Category: "Home & Kitchen", Brand: "Instant Pot", Stock: 35,
			Image: "/uploads/instantpotduo.jpg", Rating: 4.7, NumReviews: 145,
		},
		{
			Name:        "Dyson V15 Detect Vacuum",
			Description: "Cordless vacuum with laser dust detection and powerful suction.",
			Price:       749.99, Category: "Home & Kitchen", Brand: "Dyson", Stock: 15,
			Image: "/uploads/dysonv15.jpg", Rating: 4.8, NumReviews: 78,
		},
	}

	john := users[1]
	jane := users[2]

	products[0].Reviews = []models.Review{
		{UserID: john.ID, Name: "John Doe", Rating: 5, Comment: "Excellent phone! The camera quality is amazing."},
		{UserID: jane.ID, Name: "Jane Smith", Rating: 4, Comment: "Great performance, but quite expensive."},
	}
	products[4].Reviews = []models.Review{
		{UserID: jane.ID, Name: "Jane Smith", Rating: 5, Comment: "Best noise cancellation I've ever experienced!"},
	}

	for i := range products {
		if err := db.Create(&products[i]).Error; err != nil {
			return nil, err
		}
	}
	return products, nil
}

func seedOrders(db *gorm.DB, users []models.User, products []models.Product) ([]models.Order, error) {
	now := time.Now()
	john := users[1]
	jane := users[2]

	orders := []models.Order{
		{
			UserID: john.ID,
			OrderItems: []models.OrderItem{
				{Name: products[0].Name, Qty: 1, Image: products[0].Image, Price: products[0].Price, ProductID: products[0].ID},
			},
			ShippingAddress: models.ShippingAddress{Address: "456 Main Street", City: "Los Angeles", PostalCode: "90210", Country: "USA"},
			PaymentMethod:   models.PaymentMethodCreditCard,
			TotalPrice:      999.99,
			IsPaid:          true,
			PaidAt:          &now,
		},
		{
			UserID: jane.ID,
			OrderItems: []models.OrderItem{
				{Name: products[4].Name, Qty: 1, Image: products[4].Image, Price: products[4].Price, ProductID: products[4].ID},
				{Name: products[6].Name, Qty: 1, Image: products[6].Image, Price: products[6].Price, ProductID: products[6].ID},
			},
			ShippingAddress: models.ShippingAddress{Address: "789 Oak Avenue", City: "Chicago", PostalCode: "60614", Country: "USA"},
			PaymentMethod:   models.PaymentMethodPayPal,
			TotalPrice:      549.98,
			IsPaid:          true,
			PaidAt:          &now,
			IsDelivered:     true,
			DeliveredAt:     &now,
		},
	}

	for i := range orders {
		if err := db.Create(&orders[i]).Error; err != nil {
			return nil, err
		}
	}
	return orders, nil
}
