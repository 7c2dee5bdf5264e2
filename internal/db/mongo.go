package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mesh-intelligence/taskpad/pkg/types"
)

// Mongo target names and the per-operation deadline.
const (
	mongoDatabase   = "test"
	mongoCollection = "tasks"
	mongoTimeout    = 10 * time.Second
)

// Mongo persists tasks as documents in a single collection. The client is
// constructed eagerly but connects lazily, so resolving a Mongo persister
// does not require a reachable server.
type Mongo struct {
	conn   string
	client *mongo.Client
}

// Compile-time interface check: Mongo must implement DBPersister.
var _ types.DBPersister = (*Mongo)(nil)

// mongoTask is the wire shape of one task document.
type mongoTask struct {
	ID       uint32 `bson:"id"`
	Content  string `bson:"content"`
	Priority string `bson:"priority"`
	Checked  bool   `bson:"checked"`
}

// NewMongo builds a Mongo adapter for the given URI (mongodb:// or
// mongodb+srv://).
func NewMongo(conn string) (*Mongo, error) {
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(conn))
	if err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", conn, err)
	}
	return &Mongo{conn: conn, client: client}, nil
}

// opContext returns the bounded context every operation runs under.
func opContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), mongoTimeout)
}

// collection returns the handle to the tasks collection.
func (m *Mongo) collection() *mongo.Collection {
	return m.client.Database(mongoDatabase).Collection(mongoCollection)
}

// Conn returns the connection string.
func (m *Mongo) Conn() string {
	return m.conn
}

// Exists reports whether the target database exists on the server.
func (m *Mongo) Exists() bool {
	ctx, cancel := opContext()
	defer cancel()

	names, err := m.client.ListDatabaseNames(ctx, bson.M{"name": mongoDatabase})
	if err != nil {
		return false
	}
	return len(names) > 0
}

// Create initializes the tasks collection.
func (m *Mongo) Create() error {
	ctx, cancel := opContext()
	defer cancel()

	if err := m.client.Database(mongoDatabase).CreateCollection(ctx, mongoCollection); err != nil {
		return fmt.Errorf("creating collection: %w", err)
	}
	return nil
}

// Count returns the number of stored documents, 0 if the target does not
// exist.
func (m *Mongo) Count() (int, error) {
	if !m.Exists() {
		return 0, nil
	}

	ctx, cancel := opContext()
	defer cancel()

	count, err := m.collection().CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("counting documents: %w", err)
	}
	return int(count), nil
}

// Tasks returns every stored document as a domain task.
func (m *Mongo) Tasks() ([]types.Task, error) {
	ctx, cancel := opContext()
	defer cancel()

	cursor, err := m.collection().Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("finding documents: %w", err)
	}

	var docs []mongoTask
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decoding documents: %w", err)
	}

	tasks := make([]types.Task, len(docs))
	for i, doc := range docs {
		tasks[i] = types.NewTask(doc.ID, doc.Content, types.ParsePriority(doc.Priority), doc.Checked)
	}
	return tasks, nil
}

// Select returns every stored document rendered as a canonical task line.
func (m *Mongo) Select() ([]string, error) {
	tasks, err := m.Tasks()
	if err != nil {
		return nil, err
	}

	lines := make([]string, len(tasks))
	for i := range tasks {
		lines[i] = tasks[i].Line()
	}
	return lines, nil
}

// Insert appends every task of the Todo as a document.
func (m *Mongo) Insert(todo *types.Todo) error {
	if len(todo.Tasks) == 0 {
		return nil
	}

	docs := make([]any, len(todo.Tasks))
	for i, task := range todo.Tasks {
		docs[i] = mongoTask{
			ID:       task.ID,
			Content:  task.Content,
			Priority: task.Priority.String(),
			Checked:  task.Checked,
		}
	}

	ctx, cancel := opContext()
	defer cancel()

	if _, err := m.collection().InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("inserting documents: %w", err)
	}
	return nil
}

// Update applies a non-insert action with an id $in filter. The set
// actions take their value from the first id-matched task of the passed
// Todo and apply it to the whole id set.
func (m *Mongo) Update(todo *types.Todo, ids []uint32, action types.Action) error {
	if action.Kind == types.ActionDrop {
		return m.Delete(ids)
	}
	if len(ids) == 0 {
		return nil
	}

	var (
		field string
		value any
	)
	switch action.Kind {
	case types.ActionCheck:
		field, value = "checked", true
	case types.ActionUncheck:
		field, value = "checked", false
	case types.ActionSetContent:
		matched := todo.Get(ids)
		if len(matched) == 0 {
			return nil
		}
		field, value = "content", matched[0].Content
	case types.ActionSetPriority:
		matched := todo.Get(ids)
		if len(matched) == 0 {
			return nil
		}
		field, value = "priority", matched[0].Priority.String()
	default:
		return fmt.Errorf("unknown action %q", action.Kind)
	}

	ctx, cancel := opContext()
	defer cancel()

	filter := bson.M{"id": bson.M{"$in": ids}}
	update := bson.M{"$set": bson.M{field: value}}

	if _, err := m.collection().UpdateMany(ctx, filter, update); err != nil {
		return fmt.Errorf("updating documents: %w", err)
	}
	return nil
}

// Delete removes the documents matching ids.
func (m *Mongo) Delete(ids []uint32) error {
	if len(ids) == 0 {
		return nil
	}

	ctx, cancel := opContext()
	defer cancel()

	filter := bson.M{"id": bson.M{"$in": ids}}
	if _, err := m.collection().DeleteMany(ctx, filter); err != nil {
		return fmt.Errorf("deleting documents: %w", err)
	}
	return nil
}

// Clean removes every document but keeps the collection.
func (m *Mongo) Clean() error {
	ctx, cancel := opContext()
	defer cancel()

	if _, err := m.collection().DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("cleaning collection: %w", err)
	}
	return nil
}

// Drop deletes the tasks collection.
func (m *Mongo) Drop() error {
	ctx, cancel := opContext()
	defer cancel()

	if err := m.collection().Drop(ctx); err != nil {
		return fmt.Errorf("dropping collection: %w", err)
	}
	return nil
}

// Close disconnects the client.
func (m *Mongo) Close() error {
	ctx, cancel := opContext()
	defer cancel()

	return m.client.Disconnect(ctx)
}
