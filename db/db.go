package db

import (
	"context"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/jsphweid/melowave/constants"
	"github.com/jsphweid/melowave/logger"
	"github.com/jsphweid/melowave/model"
)

// MaxBatch is the DynamoDB BatchGetItem key limit.
const MaxBatch = 100

// MaxAttempts bounds how often unprocessed keys are requested again.
const MaxAttempts = 3

type MetadataStore struct {
	client dynamodbiface.DynamoDBAPI
	table  string
	log    *logger.Logger
}

func NewMetadataStore(client dynamodbiface.DynamoDBAPI, table string, log *logger.Logger) *MetadataStore {
	return &MetadataStore{client: client, table: table, log: log}
}

// NewMetadataStoreFromEnv returns nil when no metadata endpoint is
// configured; a nil store finds nothing.
func NewMetadataStoreFromEnv(log *logger.Logger) (*MetadataStore, error) {
	endpoint := constants.GetMetadataEndpoint()
	if endpoint == "" {
		return nil, nil
	}
	sess, err := session.NewSession(&aws.Config{
		Region:   aws.String(constants.GetMetadataRegion()),
		Endpoint: aws.String(endpoint),
	})
	if err != nil {
		return nil, fmt.Errorf("creating DynamoDB session: %w", err)
	}
	return NewMetadataStore(dynamodb.New(sess), constants.GetMetadataTable(), log), nil
}

// GetSongMetadatas looks up metadata keyed by song file name. Files
// without an entry are absent from the result.
func (s *MetadataStore) GetSongMetadatas(ctx context.Context, filenames []string) (map[string]model.SongMetadata, error) {
	res := make(map[string]model.SongMetadata)
	if s == nil || len(filenames) == 0 {
		return res, nil
	}
	if len(filenames) > MaxBatch {
		return nil, fmt.Errorf("at most %v filenames per lookup, got %v", MaxBatch, len(filenames))
	}

	var keys []map[string]*dynamodb.AttributeValue
	for _, filename := range filenames {
		keys = append(keys, map[string]*dynamodb.AttributeValue{
			"PK": {S: aws.String(filename)},
		})
	}

	request := map[string]*dynamodb.KeysAndAttributes{
		s.table: {Keys: keys},
	}
	for attempt := 0; attempt < MaxAttempts && len(request) > 0; attempt++ {
		out, err := s.client.BatchGetItemWithContext(ctx, &dynamodb.BatchGetItemInput{RequestItems: request})
		if err != nil {
			return nil, fmt.Errorf("batch get from %v: %w", s.table, err)
		}
		for _, item := range out.Responses[s.table] {
			if pk := stringAttr(item, "PK"); pk != "" {
				res[pk] = songMetadata(item)
			}
		}
		request = out.UnprocessedKeys
	}

	if unprocessed, ok := request[s.table]; ok && len(unprocessed.Keys) > 0 && s.log != nil {
		s.log.Warn("metadata keys left unprocessed", "table", s.table, "keys", len(unprocessed.Keys))
	}
	return res, nil
}

func songMetadata(item map[string]*dynamodb.AttributeValue) model.SongMetadata {
	var m model.SongMetadata
	m.Title = stringAttr(item, "Title")
	m.Artist = stringAttr(item, "Artist")
	m.Release = stringAttr(item, "Release")
	if v, ok := item["Year"]; ok && v.N != nil {
		year, _ := strconv.ParseUint(*v.N, 10, 32)
		m.Year = uint(year)
	}
	return m
}

func stringAttr(item map[string]*dynamodb.AttributeValue, key string) string {
	if v, ok := item[key]; ok && v.S != nil {
		return *v.S
	}
	return ""
}
