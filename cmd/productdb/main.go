package main

import "github.com/mytheresa/product-entry/cmd/productdb/commands"

func main() {
	commands.Execute()
}
