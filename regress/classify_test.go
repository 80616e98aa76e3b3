package regress

import (
	"testing"

	"gonum.org/v1/gonum/mat"
)

func separableSet() (*mat.Dense, []float64) {
	// Two clusters: positives around (2, 2), negatives around (-2, -2)
	x := mat.NewDense(8, 2, []float64{
		2.0, 2.1,
		1.8, 2.4,
		2.5, 1.7,
		2.2, 2.2,
		-2.0, -1.9,
		-2.3, -2.1,
		-1.7, -2.5,
		-2.1, -2.0,
	})
	labels := []float64{1, 1, 1, 1, -1, -1, -1, -1}
	return x, labels
}

func TestClassifierSeparable(t *testing.T) {
	x, labels := separableSet()

	var c Classifier
	if err := c.Fit(x, labels); err != nil {
		t.Fatalf("error fitting: %v", err)
	}

	score, err := c.Score(x, labels)
	if err != nil {
		t.Fatalf("error scoring: %v", err)
	}
	if score != 1 {
		t.Errorf("wrong training accuracy on separable data. Expected 1, found %v", score)
	}

	p, err := c.Predict([]float64{3, 3})
	if err != nil {
		t.Fatalf("error predicting: %v", err)
	}
	if p != 1 {
		t.Errorf("wrong label for (3,3). Expected 1, found %v", p)
	}
	p, err = c.Predict([]float64{-3, -2.5})
	if err != nil {
		t.Fatalf("error predicting: %v", err)
	}
	if p != -1 {
		t.Errorf("wrong label for (-3,-2.5). Expected -1, found %v", p)
	}
}

func TestClassifierDecisionSign(t *testing.T) {
	x, labels := separableSet()

	var c Classifier
	if err := c.Fit(x, labels); err != nil {
		t.Fatalf("error fitting: %v", err)
	}

	d, err := c.Decision([]float64{2, 2})
	if err != nil {
		t.Fatalf("error evaluating: %v", err)
	}
	if d <= 0 {
		t.Errorf("decision value for a positive point is not positive: %v", d)
	}
	d, err = c.Decision([]float64{-2, -2})
	if err != nil {
		t.Fatalf("error evaluating: %v", err)
	}
	if d >= 0 {
		t.Errorf("decision value for a negative point is not negative: %v", d)
	}
}

func TestClassifierErrors(t *testing.T) {
	var c Classifier
	if _, err := c.Predict([]float64{1, 2}); err == nil {
		t.Error("expected an error predicting with an unfitted classifier")
	}

	x, labels := separableSet()
	if err := c.Fit(x, labels[:4]); err == nil {
		t.Error("expected an error for mismatched label count")
	}
	if err := c.Fit(x, []float64{1, 1, 1, 1, 0.5, -1, -1, -1}); err == nil {
		t.Error("expected an error for a label that is not +1/-1")
	}
	if err := c.Fit(mat.NewDense(2, 3, nil), []float64{1, -1}); err == nil {
		t.Error("expected an error for fewer samples than weights")
	}

	if err := c.Fit(x, labels); err != nil {
		t.Fatalf("error fitting: %v", err)
	}
	if _, err := c.Predict([]float64{1}); err == nil {
		t.Error("expected an error for a feature vector of the wrong length")
	}
}
