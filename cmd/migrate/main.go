package main

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	_ "github.com/joho/godotenv/autoload"
	"golang.org/x/crypto/bcrypt"

	"github.com/giordanomadjo-lab/sisgped/internal/infrastructure/database"
)

// migrate provisions the DynamoDB tables and seeds the activity-type catalog
// plus a bootstrap manager account. Safe to run repeatedly: existing tables
// and items are left untouched.
func main() {
	ctx := context.Background()
	ddb := database.ConnectDynamoDB()

	for _, t := range tableDefinitions() {
		createTable(ctx, ddb, t)
	}

	seedServiceTypes(ctx, ddb)
	seedAdminUser(ctx, ddb)

	log.Printf("[migrate] done")
}

type tableDef struct {
	name       string
	attributes []types.AttributeDefinition
	keySchema  []types.KeySchemaElement
	gsis       []types.GlobalSecondaryIndex
}

func tableDefinitions() []tableDef {
	stringKey := func(name string) types.AttributeDefinition {
		return types.AttributeDefinition{AttributeName: aws.String(name), AttributeType: types.ScalarAttributeTypeS}
	}
	hashKey := func(name string) []types.KeySchemaElement {
		return []types.KeySchemaElement{{AttributeName: aws.String(name), KeyType: types.KeyTypeHash}}
	}

	return []tableDef{
		{
			name:       getenvDefault("USERS_TABLE", "users"),
			attributes: []types.AttributeDefinition{stringKey("id")},
			keySchema:  hashKey("id"),
		},
		{
			name:       getenvDefault("SESSIONS_TABLE", "sessions"),
			attributes: []types.AttributeDefinition{stringKey("id")},
			keySchema:  hashKey("id"),
		},
		{
			name:       getenvDefault("INSTRUCTORS_TABLE", "instructors"),
			attributes: []types.AttributeDefinition{stringKey("matricula")},
			keySchema:  hashKey("matricula"),
		},
		{
			name:       getenvDefault("SERVICE_TYPES_TABLE", "service_types"),
			attributes: []types.AttributeDefinition{stringKey("id")},
			keySchema:  hashKey("id"),
		},
		{
			name:       getenvDefault("SERVICES_TABLE", "services"),
			attributes: []types.AttributeDefinition{stringKey("id")},
			keySchema:  hashKey("id"),
		},
		{
			name:       getenvDefault("NOTIFICATIONS_TABLE", "notifications"),
			attributes: []types.AttributeDefinition{stringKey("id"), stringKey("user_id"), stringKey("created_at")},
			keySchema:  hashKey("id"),
			gsis: []types.GlobalSecondaryIndex{
				{
					IndexName: aws.String("user_id-index"),
					KeySchema: []types.KeySchemaElement{
						{AttributeName: aws.String("user_id"), KeyType: types.KeyTypeHash},
						{AttributeName: aws.String("created_at"), KeyType: types.KeyTypeRange},
					},
					Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
				},
			},
		},
	}
}

func createTable(ctx context.Context, ddb *dynamodb.Client, t tableDef) {
	input := &dynamodb.CreateTableInput{
		TableName:            aws.String(t.name),
		AttributeDefinitions: t.attributes,
		KeySchema:            t.keySchema,
		BillingMode:          types.BillingModePayPerRequest,
	}
	if len(t.gsis) > 0 {
		input.GlobalSecondaryIndexes = t.gsis
	}

	_, err := ddb.CreateTable(ctx, input)
	if err != nil {
		var inUse *types.ResourceInUseException
		if errors.As(err, &inUse) {
			log.Printf("[migrate] table %s already exists", t.name)
			return
		}
		log.Fatalf("[migrate] failed to create table %s: %v", t.name, err)
	}
	log.Printf("[migrate] created table %s", t.name)
}

// defaultServiceTypes is the catalog the submission form offers. IDs are
// fixed so reruns do not duplicate rows.
var defaultServiceTypes = []struct {
	ID        string
	Nome      string
	Categoria string
}{
	{"st-consultoria-pedagogica", "Consultoria Pedagógica", "CONSULTORIA"},
	{"st-mentoria-tecnica", "Mentoria Técnica", "CONSULTORIA"},
	{"st-desenvolvimento-conteudo", "Desenvolvimento de Conteúdo", "CONSULTORIA"},
	{"st-treinamento-corporativo", "Treinamento Corporativo", "CONSULTORIA"},
	{"st-reuniao-departamento", "Reunião de Departamento", "DEP"},
	{"st-planejamento-curso", "Planejamento de Curso", "DEP"},
	{"st-apoio-administrativo", "Apoio Administrativo", "DEP"},
}

func seedServiceTypes(ctx context.Context, ddb *dynamodb.Client) {
	table := getenvDefault("SERVICE_TYPES_TABLE", "service_types")
	for _, st := range defaultServiceTypes {
		item, err := attributevalue.MarshalMap(map[string]any{
			"id":        st.ID,
			"nome":      st.Nome,
			"categoria": st.Categoria,
			"ativo":     true,
		})
		if err != nil {
			log.Fatalf("[migrate] failed to marshal service type: %v", err)
		}
		_, err = ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName:           aws.String(table),
			Item:                item,
			ConditionExpression: aws.String("attribute_not_exists(id)"),
		})
		if err != nil {
			var cfe *types.ConditionalCheckFailedException
			if errors.As(err, &cfe) {
				continue
			}
			log.Fatalf("[migrate] failed to seed service type %s: %v", st.ID, err)
		}
		log.Printf("[migrate] seeded service type %s", st.Nome)
	}
}

// seedAdminUser creates the first GESTOR account from ADMIN_EMAIL and
// ADMIN_SENHA so there is a way into a fresh install. Skipped when the env
// vars are unset or the email guard already exists.
func seedAdminUser(ctx context.Context, ddb *dynamodb.Client) {
	// Login lowercases the email before the lookup; seed the same form.
	email := strings.ToLower(strings.TrimSpace(os.Getenv("ADMIN_EMAIL")))
	senha := os.Getenv("ADMIN_SENHA")
	if email == "" || senha == "" {
		log.Printf("[migrate] ADMIN_EMAIL/ADMIN_SENHA not set, skipping bootstrap user")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("[migrate] failed to hash admin password: %v", err)
	}

	table := getenvDefault("USERS_TABLE", "users")
	id := uuid.NewString()
	now := time.Now().UTC().Format(time.RFC3339Nano)

	userItem, err := attributevalue.MarshalMap(map[string]any{
		"id":         id,
		"nome":       "Administrador",
		"email":      email,
		"senha_hash": string(hash),
		"perfil":     "GESTOR",
		"matricula":  "",
		"ativo":      true,
		"created_at": now,
		"updated_at": now,
	})
	if err != nil {
		log.Fatalf("[migrate] failed to marshal admin user: %v", err)
	}
	guardItem, err := attributevalue.MarshalMap(map[string]any{
		"id":      "email#" + email,
		"user_id": id,
	})
	if err != nil {
		log.Fatalf("[migrate] failed to marshal email guard: %v", err)
	}

	_, err = ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:           aws.String(table),
				Item:                guardItem,
				ConditionExpression: aws.String("attribute_not_exists(id)"),
			}},
			{Put: &types.Put{
				TableName:           aws.String(table),
				Item:                userItem,
				ConditionExpression: aws.String("attribute_not_exists(id)"),
			}},
		},
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			log.Printf("[migrate] bootstrap user %s already exists", email)
			return
		}
		log.Fatalf("[migrate] failed to seed bootstrap user: %v", err)
	}
	log.Printf("[migrate] seeded bootstrap user %s", email)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
