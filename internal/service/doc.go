// Package service implements the application's business operations on top
// of the store interfaces: learner registration, vocabulary and grammar
// ledgers, level assessment, text analysis, and text adaptation.
package service
