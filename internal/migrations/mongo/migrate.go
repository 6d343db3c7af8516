package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"turismo/internal/migrations/mongo/validators"
	"turismo/pkg/logger"
	"turismo/pkg/model"
)

type collectionDef struct {
	Name      string
	Indexes   []mongo.IndexModel
	Validator bson.M
}

func refIndex(field string) mongo.IndexModel {
	return mongo.IndexModel{Keys: bson.D{{Key: field, Value: 1}}}
}

// Collections lists every collection the back-office uses. Reference fields
// are indexed so the joins stay cheap; nothing enforces that targets exist.
var Collections = []collectionDef{
	{
		Name:      model.Hotel{}.CollectionName(),
		Validator: validators.HotelValidator,
	},
	{
		Name:      model.Tour{}.CollectionName(),
		Validator: validators.TourValidator,
	},
	{
		Name:      model.Vuelo{}.CollectionName(),
		Validator: validators.VueloValidator,
	},
	{
		Name:      model.Cliente{}.CollectionName(),
		Validator: validators.ClienteValidator,
		Indexes:   []mongo.IndexModel{refIndex("dni")},
	},
	{
		Name:      model.Reservation{}.CollectionName(),
		Validator: validators.ReservationValidator,
		Indexes: []mongo.IndexModel{
			refIndex("hotel"),
			refIndex("tour"),
			refIndex("cliente"),
			{Keys: bson.D{{Key: "date_start", Value: 1}, {Key: "date_end", Value: 1}}},
		},
	},
	{
		Name:      model.Ticket{}.CollectionName(),
		Validator: validators.TicketValidator,
		Indexes: []mongo.IndexModel{
			refIndex("tour"),
			refIndex("vuelo"),
			refIndex("cliente"),
		},
	},
}

func RunMigration(ctx context.Context, db *mongo.Database, log *logger.Logger) error {
	log.Info("Running Mongo migrations", "database", db.Name())

	for _, def := range Collections {
		if err := ensureCollection(ctx, db, def.Name, def.Validator, log); err != nil {
			return fmt.Errorf("failed to ensure collection %s: %w", def.Name, err)
		}
		if err := ensureIndexes(ctx, db, def.Name, def.Indexes, log); err != nil {
			return fmt.Errorf("failed to ensure indexes for %s: %w", def.Name, err)
		}
	}

	log.Info("All migrations applied successfully", "collections", len(Collections))
	return nil
}

func ensureCollection(ctx context.Context, db *mongo.Database, name string, validator bson.M, log *logger.Logger) error {
	existing, err := db.ListCollectionNames(ctx, bson.D{{Key: "name", Value: name}})
	if err != nil {
		return err
	}

	if len(existing) == 0 {
		log.Info("Creating collection", "collection", name)
		opts := options.CreateCollection().SetValidator(validator)
		if err := db.CreateCollection(ctx, name, opts); err != nil {
			return fmt.Errorf("failed creating %s: %w", name, err)
		}
		return nil
	}

	log.Info("Collection already exists, updating validator", "collection", name)
	command := bson.D{
		{Key: "collMod", Value: name},
		{Key: "validator", Value: validator},
	}
	if err := db.RunCommand(ctx, command).Err(); err != nil {
		log.Warn("Failed updating validator", "collection", name, "error", err)
	}
	return nil
}

func ensureIndexes(ctx context.Context, db *mongo.Database, name string, models []mongo.IndexModel, log *logger.Logger) error {
	if len(models) == 0 {
		return nil
	}
	if _, err := db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
		return err
	}
	log.Info("Ensured indexes", "collection", name, "indexes", len(models))
	return nil
}
