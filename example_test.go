package numduration_test

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/amirhossein-jamali/numduration"
)

func ExampleHours() {
	d, err := numduration.Hours(36)
	if err != nil {
		panic(err)
	}
	fmt.Println(d)
	// Output: 36h0m0s
}

func ExampleMustDays() {
	today := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	fmt.Println(today.Add(numduration.MustDays(1)).Format(time.DateOnly))
	fmt.Println(today.Add(-numduration.MustWeeks(1)).Format(time.DateOnly))
	// Output:
	// 2023-01-02
	// 2022-12-25
}

func ExampleWeeks_overflow() {
	_, err := numduration.Weeks(int64(math.MaxInt64))
	fmt.Println(errors.Is(err, numduration.ErrOverflow))
	// Output: true
}

func ExampleOf() {
	d, _ := numduration.Of(uint8(90)).Minutes()
	fmt.Println(d)
	// Output: 1h30m0s
}
