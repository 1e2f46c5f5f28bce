package main

import (
	"fmt"
	"os"
	"shifter/internal/rotate"
	"shifter/internal/shift"
)

func main() {
	if len(os.Args) <= 2 {
		fmt.Println("Usage: offset <plain> <cipher>")
		return
	}

	n, err := rotate.Infer(shift.Must(shift.Default).Alphabet(), os.Args[1], os.Args[2])
	if err != nil {
		fmt.Println("Offset error:")
		fmt.Println(err)
		os.Exit(1)
	}
	fmt.Println(n)
}
