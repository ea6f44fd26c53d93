package children

import (
	DB "Backend-KidCheckin/src/database"
	"Backend-KidCheckin/src/models"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrChildNotFound = errors.New("child not found")

// CreateChild registers a new child profile.
func CreateChild(child *models.Child) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if strings.TrimSpace(child.FullName) == "" {
		child.FullName = strings.TrimSpace(child.FirstName + " " + child.LastName)
	}
	if child.Category == "" {
		child.Category = models.CategoryGuest
	}
	now := time.Now()
	child.CreatedAt = now
	child.UpdatedAt = now
	child.IsNew = false
	child.FirstAttendanceDate = ""

	res, err := DB.ChildCollection.InsertOne(ctx, child)
	if err != nil {
		return fmt.Errorf("failed to create child: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		child.ID = oid
	}
	return nil
}

// GetChildByID resolves a child by hex id. Unknown ids map to ErrChildNotFound.
func GetChildByID(id string) (*models.Child, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrChildNotFound
	}

	var child models.Child
	err = DB.ChildCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&child)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrChildNotFound
		}
		return nil, fmt.Errorf("failed to fetch child: %w", err)
	}
	return &child, nil
}

// UpdateChild applies a field-scoped patch to a child profile. The check-in
// core uses this for the narrow {isNew, firstAttendanceDate} patch; the
// registration desk uses it for profile edits.
func UpdateChild(id string, patch bson.M) (*models.Child, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrChildNotFound
	}

	delete(patch, "_id")
	patch["updatedAt"] = time.Now()

	// keep fullName in sync when a name field changes
	if first, ok := patch["firstName"].(string); ok {
		last, lok := patch["lastName"].(string)
		if !lok {
			if existing, err := GetChildByID(id); err == nil {
				last = existing.LastName
			}
		}
		patch["fullName"] = strings.TrimSpace(first + " " + last)
	}

	after := options.After
	opts := options.FindOneAndUpdate().SetReturnDocument(after)

	var updated models.Child
	err = DB.ChildCollection.FindOneAndUpdate(ctx, bson.M{"_id": objID}, bson.M{"$set": patch}, opts).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrChildNotFound
		}
		return nil, fmt.Errorf("failed to update child: %w", err)
	}
	return &updated, nil
}

// SearchChildren does a case-insensitive substring match over first, last and
// full name, paginated.
func SearchChildren(params models.PaginationParams) ([]models.Child, int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if params.Search != "" {
		regex := bson.M{"$regex": params.Search, "$options": "i"}
		filter["$or"] = bson.A{
			bson.M{"firstName": regex},
			bson.M{"lastName": regex},
			bson.M{"fullName": regex},
		}
	}

	total, err := DB.ChildCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count children: %w", err)
	}

	sort := 1
	if strings.ToLower(params.Order) == "desc" {
		sort = -1
	}
	opts := options.Find().
		SetSort(bson.D{{Key: params.SortBy, Value: sort}}).
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit))

	cursor, err := DB.ChildCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search children: %w", err)
	}
	defer cursor.Close(ctx)

	var results []models.Child
	if err := cursor.All(ctx, &results); err != nil {
		return nil, 0, fmt.Errorf("failed to decode children: %w", err)
	}
	return results, total, nil
}

// AddSibling links two children as siblings. The edge is symmetric: both
// directions are written in the same call so the lists cannot drift apart.
func AddSibling(childID, siblingID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	aID, err1 := primitive.ObjectIDFromHex(childID)
	bID, err2 := primitive.ObjectIDFromHex(siblingID)
	if err1 != nil || err2 != nil || aID == bID {
		return ErrChildNotFound
	}

	// both children must exist before either side is touched
	count, err := DB.ChildCollection.CountDocuments(ctx, bson.M{"_id": bson.M{"$in": bson.A{aID, bID}}})
	if err != nil {
		return fmt.Errorf("failed to verify siblings: %w", err)
	}
	if count != 2 {
		return ErrChildNotFound
	}

	if _, err := DB.ChildCollection.UpdateOne(ctx, bson.M{"_id": aID},
		bson.M{"$addToSet": bson.M{"siblingIds": bID}}); err != nil {
		return fmt.Errorf("failed to add sibling: %w", err)
	}
	if _, err := DB.ChildCollection.UpdateOne(ctx, bson.M{"_id": bID},
		bson.M{"$addToSet": bson.M{"siblingIds": aID}}); err != nil {
		return fmt.Errorf("failed to add sibling: %w", err)
	}
	return nil
}

// RemoveSibling unlinks two children, clearing both directions.
func RemoveSibling(childID, siblingID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	aID, err1 := primitive.ObjectIDFromHex(childID)
	bID, err2 := primitive.ObjectIDFromHex(siblingID)
	if err1 != nil || err2 != nil {
		return ErrChildNotFound
	}

	if _, err := DB.ChildCollection.UpdateOne(ctx, bson.M{"_id": aID},
		bson.M{"$pull": bson.M{"siblingIds": bID}}); err != nil {
		return fmt.Errorf("failed to remove sibling: %w", err)
	}
	if _, err := DB.ChildCollection.UpdateOne(ctx, bson.M{"_id": bID},
		bson.M{"$pull": bson.M{"siblingIds": aID}}); err != nil {
		return fmt.Errorf("failed to remove sibling: %w", err)
	}
	return nil
}
