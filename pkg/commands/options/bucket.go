package options

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/clipbucket/pkg/bucket"
)

// BucketOptions selects a bucket slot by its 1-based number.
type BucketOptions struct {
	Slot int
	Name string
}

func AddBucketArgs(cmd *cobra.Command, o *BucketOptions) {
	cmd.Flags().IntVarP(&o.Slot, "bucket", "b", 0,
		fmt.Sprintf("Bucket slot, 1-%d.", bucket.Slots))
}

func AddNameArgs(cmd *cobra.Command, o *BucketOptions) {
	cmd.Flags().StringVar(&o.Name, "name", "",
		"Name to give an unused bucket slot.")
}

// Validate checks the slot range. With required unset a zero slot is allowed
// and means no bucket.
func (o *BucketOptions) Validate(required bool) error {
	if o.Slot == 0 {
		if required {
			return errors.New("--bucket is required")
		}
		return nil
	}
	if o.Slot < 1 || o.Slot > bucket.Slots {
		return fmt.Errorf("--bucket must be between 1 and %d", bucket.Slots)
	}
	return nil
}

// ParseSlot reads a 1-based slot number from a positional argument.
func ParseSlot(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > bucket.Slots {
		return 0, fmt.Errorf("bucket must be a number between 1 and %d, got %q", bucket.Slots, arg)
	}
	return n, nil
}
