package types

import "fmt"

type TableName string

func (s TableName) Name() string {
	return fmt.Sprintf("%s%s", TABLE_PREFIX, s)
}

const TABLE_PREFIX = "postpilot_"

const (
	TABLE_KNOWLEDGE_CHUNKS = TableName("knowledge_chunks")
)
