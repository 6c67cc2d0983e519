// Package greyscale is a small toolkit for greyscale images stored as
// plain-text Portable Gray Maps ("P2").
//
// What it covers:
//
//	• Codec: read and write the P2 text format over any io.Reader/io.Writer
//	• Container: a generic ImageMatrix over int32, float32 or float64 samples
//	• Equality: exact comparison of dimensions, max value and every sample
//	• Interop: view a decoded image as a gonum *mat.Dense
//
// What it deliberately leaves out: binary P5, colour PPM, compression,
// resizing, filtering and any other pixel arithmetic.
//
// Everything is organized under two subpackages:
//
//	pgm/     — P2 header parsing, pixel token scanning and encoding
//	imatrix/ — ImageMatrix[T]: Open, ReadImage, WriteImage, Equal, accessors
//
// Quick example:
//
//	img, err := imatrix.Open[int32]("lena.pgm")
//	if err != nil {
//		log.Fatal(err)
//	}
//	err = img.WriteImage("lena-copy.pgm")
//
//	go get github.com/katalvlaran/greyscale/imatrix
package greyscale
