package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/diceprojects/auth-system/internal/core/domain"
)

const usersCollection = "users"

// UserRepository implements ports.UserRepository on the users collection.
type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(usersCollection)}
}

type userDoc struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty"`
	Username            string             `bson:"username"`
	Password            string             `bson:"password"`
	Status              string             `bson:"status"`
	Deleted             bool               `bson:"deleted"`
	DeleteDate          *time.Time         `bson:"delete_date,omitempty"`
	CreateDate          time.Time          `bson:"create_date"`
	UpdateDate          *time.Time         `bson:"update_date,omitempty"`
	SecurityToken       string             `bson:"security_token,omitempty"`
	ForcePasswordChange bool               `bson:"force_password_change"`
	RoleIDs             []string           `bson:"role_ids,omitempty"`
}

// FindByUsername performs a case-insensitive exact match on the username.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"username": caseInsensitiveExact(username)}

	var doc userDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	var doc userDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := fromDomainUser(user)
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	created := *user
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(user.ID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	doc := fromDomainUser(user)
	doc.ID = oid

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

// EnsureIndexes creates the unique username index.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: uniqueIndex(),
	})
	return err
}

func (d *userDoc) toDomain() *domain.User {
	user := &domain.User{
		ID:                  d.ID.Hex(),
		Username:            d.Username,
		PasswordHash:        d.Password,
		Status:              d.Status,
		Deleted:             d.Deleted,
		CreateDate:          d.CreateDate,
		SecurityToken:       d.SecurityToken,
		ForcePasswordChange: d.ForcePasswordChange,
		RoleIDs:             d.RoleIDs,
	}
	if d.DeleteDate != nil {
		user.DeleteDate = *d.DeleteDate
	}
	if d.UpdateDate != nil {
		user.UpdateDate = *d.UpdateDate
	}
	return user
}

func fromDomainUser(u *domain.User) userDoc {
	doc := userDoc{
		Username:            u.Username,
		Password:            u.PasswordHash,
		Status:              u.Status,
		Deleted:             u.Deleted,
		CreateDate:          u.CreateDate,
		SecurityToken:       u.SecurityToken,
		ForcePasswordChange: u.ForcePasswordChange,
		RoleIDs:             u.RoleIDs,
	}
	if !u.DeleteDate.IsZero() {
		doc.DeleteDate = &u.DeleteDate
	}
	if !u.UpdateDate.IsZero() {
		doc.UpdateDate = &u.UpdateDate
	}
	return doc
}

// caseInsensitiveExact builds an anchored case-insensitive regex for exact
// matching on an indexed string field.
func caseInsensitiveExact(value string) primitive.Regex {
	return primitive.Regex{Pattern: "^" + regexp.QuoteMeta(value) + "$", Options: "i"}
}
