package response

import (
	"fmt"
	"time"

	"shareit/internal/pkg/datetime"

	"github.com/jinzhu/copier"
)

var copyOption = copier.Option{
	IgnoreEmpty: false,
	Converters: []copier.TypeConverter{
		{
			SrcType: time.Time{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				t, ok := src.(time.Time)
				if !ok {
					return nil, fmt.Errorf("expected time.Time, got %T", src)
				}
				return datetime.Format(t), nil
			},
		},
	},
}

// mustCopy panics on failure: copier only fails when the mapping types themselves are wrong
func mustCopy(dst, src any) {
	if err := copier.CopyWithOption(dst, src, copyOption); err != nil {
		panic(fmt.Sprintf("response mapping %T -> %T: %v", src, dst, err))
	}
}
