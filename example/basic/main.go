package main

import (
	"fmt"
	"log"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/quickhull3d/quickhull3d"
)

func main() {
	points := []mgl64.Vec3{
		{0, 0, 0},
		{21, 0, 0},
		{0, 21, 0},
		{0, 0, 21},
		{1, 1, 1}, // interior, should not survive to the output
	}

	hull, err := quickhull.Build(points)
	if err != nil {
		log.Fatalf("build failed: %v", err)
	}

	if !hull.Check(func(msg string) { fmt.Println("check:", msg) }) {
		log.Fatal("hull failed verification")
	}

	result := hull.Result()
	fmt.Printf("%d vertices, %d faces, tolerance %g\n",
		len(result.Vertices), len(result.Polygons), result.DistanceTolerance)
	for _, poly := range result.Polygons {
		fmt.Println(poly)
	}
}
