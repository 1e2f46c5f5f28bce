package main

import (
	"fmt"
	"os"
	"shifter/internal/shift"
	"strconv"
)

func main() {
	if len(os.Args) <= 1 {
		fmt.Println("Usage: encode <string> [offset]")
		return
	}

	c := shift.Must(shift.Default)

	if len(os.Args) > 2 {
		n, err := strconv.Atoi(os.Args[2])
		if err != nil {
			fmt.Println("Offset must be a whole number.")
			os.Exit(2)
		}
		c = c.WithOffset(n)
	}

	fmt.Println(c.Convert(os.Args[1]))
}
