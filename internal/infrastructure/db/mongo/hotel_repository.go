package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/soulofsrilanka/travel-api/internal/core/domain"
)

const hotelCollection = "hotels"

type MongoHotelRepository struct {
	coll *mongo.Collection
}

func NewHotelRepository(db *mongo.Database) *MongoHotelRepository {
	return &MongoHotelRepository{coll: db.Collection(hotelCollection)}
}

type mongoHotel struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Location    string             `bson:"location"`
	Description string             `bson:"description"`
	Price       float64            `bson:"price"`
	Image       string             `bson:"image"`
	CreatedAt   int64              `bson:"created_at"`
}

func (r *MongoHotelRepository) Create(ctx context.Context, hotel *domain.Hotel) (*domain.Hotel, error) {
	doc := mongoHotel{
		Name:        hotel.Name,
		Location:    hotel.Location,
		Description: hotel.Description,
		Price:       hotel.Price,
		Image:       hotel.Image,
		CreatedAt:   hotel.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert hotel: %w", err)
	}

	created := *hotel
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *MongoHotelRepository) FindAll(ctx context.Context) ([]domain.Hotel, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list hotels: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoHotel
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode hotels: %w", err)
	}

	hotels := make([]domain.Hotel, 0, len(docs))
	for _, mh := range docs {
		hotels = append(hotels, domain.Hotel{
			ID:          mh.ID.Hex(),
			Name:        mh.Name,
			Location:    mh.Location,
			Description: mh.Description,
			Price:       mh.Price,
			Image:       mh.Image,
			CreatedAt:   unixToTime(mh.CreatedAt),
		})
	}
	return hotels, nil
}
