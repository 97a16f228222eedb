package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/diceprojects/auth-system/internal/core/domain"
)

const rolesCollection = "roles"

// RoleRepository implements ports.RoleRepository on the roles collection.
type RoleRepository struct {
	coll *mongo.Collection
}

func NewRoleRepository(db *mongo.Database) *RoleRepository {
	return &RoleRepository{coll: db.Collection(rolesCollection)}
}

type roleDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Role        string             `bson:"role"`
	Description string             `bson:"description,omitempty"`
	Status      string             `bson:"status"`
	Deleted     bool               `bson:"deleted"`
	DeleteDate  *time.Time         `bson:"delete_date,omitempty"`
	CreateDate  time.Time          `bson:"create_date"`
	UpdateDate  *time.Time         `bson:"update_date,omitempty"`
}

// FindByName performs a case-insensitive exact match on the role name.
func (r *RoleRepository) FindByName(ctx context.Context, name string) (*domain.Role, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc roleDoc
	if err := r.coll.FindOne(ctx, bson.M{"role": caseInsensitiveExact(name)}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRoleNotFound
		}
		return nil, fmt.Errorf("find role: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *RoleRepository) FindByID(ctx context.Context, id string) (*domain.Role, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrRoleNotFound
	}

	var doc roleDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRoleNotFound
		}
		return nil, fmt.Errorf("find role by id: %w", err)
	}
	return doc.toDomain(), nil
}

// FindByIDs returns the subset of roles whose ids matched. Unparseable ids
// are skipped; they can never match a stored document.
func (r *RoleRepository) FindByIDs(ctx context.Context, ids []string) ([]*domain.Role, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			oids = append(oids, oid)
		}
	}
	if len(oids) == 0 {
		return nil, nil
	}

	cursor, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return nil, fmt.Errorf("find roles by ids: %w", err)
	}
	defer cursor.Close(ctx)

	var roles []*domain.Role
	for cursor.Next(ctx) {
		var doc roleDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode role: %w", err)
		}
		roles = append(roles, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("find roles by ids: %w", err)
	}
	return roles, nil
}

func (r *RoleRepository) Create(ctx context.Context, role *domain.Role) (*domain.Role, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := fromDomainRole(role)
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert role: %w", err)
	}

	created := *role
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *RoleRepository) Update(ctx context.Context, role *domain.Role) (*domain.Role, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(role.ID)
	if err != nil {
		return nil, domain.ErrRoleNotFound
	}

	doc := fromDomainRole(role)
	doc.ID = oid

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return nil, fmt.Errorf("update role: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrRoleNotFound
	}
	return role, nil
}

// FindAll returns every role document, no pagination.
func (r *RoleRepository) FindAll(ctx context.Context) ([]*domain.Role, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer cursor.Close(ctx)

	var roles []*domain.Role
	for cursor.Next(ctx) {
		var doc roleDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode role: %w", err)
		}
		roles = append(roles, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	return roles, nil
}

// EnsureIndexes creates the unique role name index.
func (r *RoleRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "role", Value: 1}},
		Options: uniqueIndex(),
	})
	return err
}

func uniqueIndex() *options.IndexOptions {
	return options.Index().SetUnique(true)
}

func (d *roleDoc) toDomain() *domain.Role {
	role := &domain.Role{
		ID:          d.ID.Hex(),
		Name:        d.Role,
		Description: d.Description,
		Status:      d.Status,
		Deleted:     d.Deleted,
		CreateDate:  d.CreateDate,
	}
	if d.DeleteDate != nil {
		role.DeleteDate = *d.DeleteDate
	}
	if d.UpdateDate != nil {
		role.UpdateDate = *d.UpdateDate
	}
	return role
}

func fromDomainRole(r *domain.Role) roleDoc {
	doc := roleDoc{
		Role:        r.Name,
		Description: r.Description,
		Status:      r.Status,
		Deleted:     r.Deleted,
		CreateDate:  r.CreateDate,
	}
	if !r.DeleteDate.IsZero() {
		doc.DeleteDate = &r.DeleteDate
	}
	if !r.UpdateDate.IsZero() {
		doc.UpdateDate = &r.UpdateDate
	}
	return doc
}
