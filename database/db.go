package database

import (
	"context"
	"log"
	"time"

	"turfbook/config"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"google.golang.org/api/option"
)

// FirestoreClient is the global Firestore client instance.
var FirestoreClient *firestore.Client

// MongoClient is the global MongoDB client instance (records archive).
var MongoClient *mongo.Client

// InitFirestore initializes the Firestore connection through the Firebase app.
func InitFirestore() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var opts []option.ClientOption
	if config.AppConfig.FirebaseCredFile != "" {
		opts = append(opts, option.WithCredentialsFile(config.AppConfig.FirebaseCredFile))
	}
	fbCfg := &firebase.Config{ProjectID: config.AppConfig.FirestoreProjectID}
	app, err := firebase.NewApp(ctx, fbCfg, opts...)
	if err != nil {
		log.Fatalf("firebase: error initializing app: %v", err)
	}
	client, err := app.Firestore(ctx)
	if err != nil {
		log.Fatalf("firebase: error getting Firestore client: %v", err)
	}
	FirestoreClient = client
	log.Println("Connected to Firestore successfully!")
}

// InitMongo initializes the MongoDB connection for the records archive.
func InitMongo() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(config.AppConfig.DatabaseURL)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Fatalf("failed to connect to MongoDB: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("failed to ping MongoDB: %v", err)
	}
	MongoClient = client
	log.Println("Connected to MongoDB successfully!")
}
