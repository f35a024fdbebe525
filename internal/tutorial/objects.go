package tutorial

import (
	"context"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"

	"github.com/kazakovdmitriy/go-idioms/internal/bucket"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ListObjects печатает ключи всех объектов бакета в виде JSON-массива.
func ListObjects(ctx context.Context, out io.Writer, lister *bucket.Lister, bucketName string) error {
	keys, err := lister.ListObjects(ctx, bucketName)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(keys, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal keys: %w", err)
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}
