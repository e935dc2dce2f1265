package db

import (
	"strconv"

	"github.com/swaralipi/swaralipi/model"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
)

// GetTuneMetadatas batch-reads tune records keyed by name from the
// local metadata table. DynamoDB caps BatchGetItem at a handful of
// keys, so callers pass at most ten.
func GetTuneMetadatas(names []string) map[string]model.TuneMetadata {
	if len(names) > 10 {
		panic("Not supposed to pass in more than 10 names!")
	}

	res := make(map[string]model.TuneMetadata)

	if len(names) == 0 {
		return res
	}

	var keys []map[string]*dynamodb.AttributeValue
	for _, name := range names {
		key := make(map[string]*dynamodb.AttributeValue)
		key["PK"] = &dynamodb.AttributeValue{
			S: aws.String(name),
		}
		keys = append(keys, key)
	}

	endpoint := "http://localhost:8000"
	session, err := session.NewSession(&aws.Config{
		Region:   aws.String("localhost"),
		Endpoint: &endpoint,
	})
	if err != nil {
		panic("Could not create a new DynamoDB session because " + err.Error())
	}

	client := dynamodb.New(session)
	input := &dynamodb.BatchGetItemInput{
		RequestItems: map[string]*dynamodb.KeysAndAttributes{
			"swaralipi-metadata": {Keys: keys},
		},
	}
	dbres, err := client.BatchGetItem(input)
	if err != nil {
		panic("Error from DynamoDB: " + err.Error())
	}

	for _, v := range dbres.Responses["swaralipi-metadata"] {
		var m model.TuneMetadata
		if v["Year"] != nil && v["Year"].N != nil {
			year, _ := strconv.ParseUint(*v["Year"].N, 10, 32)
			m.Year = uint(year)
		}
		if v["Artist"] != nil && v["Artist"].S != nil {
			m.Artist = *v["Artist"].S
		}
		if v["Raga"] != nil && v["Raga"].S != nil {
			m.Raga = *v["Raga"].S
		}
		if v["Tala"] != nil && v["Tala"].S != nil {
			m.Tala = *v["Tala"].S
		}
		res[*v["PK"].S] = m
	}

	return res
}
